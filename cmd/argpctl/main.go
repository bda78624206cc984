// Command argpctl loads a parameter declaration file and shows how argp
// classifies a command line against it.
//
//	argpctl parse -d params.yaml -- -vs4 --color=never if=/dev/zero file
//	argpctl check params.hcl
package main

import (
	"os"

	"github.com/dzonerzy/snapargs/argp"
	snapio "github.com/dzonerzy/snapargs/io"
)

func main() {
	m := snapio.New()
	err := newRootCmd(m).Execute()
	os.Exit(argp.NewExitCodeManager().Resolve(err))
}
