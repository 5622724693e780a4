// Command abieos converts contract data between ABI binary and JSON.
//
// Usage:
//
//	abieos name eosio.token
//	abieos name --decode 6138663591592764928
//	abieos abi2bin token.abi.json
//	abieos abi2json token.abi.hex --pretty
//	abieos json2hex --abi token.abi --action transfer '{"from":"alice",...}'
//	abieos hex2json --abi token.abi --type transfer 0000000000855C34...
//	abieos type --abi token.abi table accounts
//	abieos explore --abi token.abi
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/abieos"
)

// options holds the flags shared by every subcommand.
type options struct {
	log      *zap.Logger
	abiFile  string
	abiHex   string
	contract string
	typeName string
	action   string
	table    string
	pretty   bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "abieos",
		Short:         "Convert contract data between ABI binary and JSON",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setupLogger()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.abiFile, "abi", "", "ABI file in JSON, hex or binary form")
	flags.StringVar(&o.abiHex, "abi-hex", "", "ABI given inline as hex")
	flags.StringVar(&o.contract, "contract", "contract", "contract name the ABI is registered under")
	flags.StringVar(&o.typeName, "type", "", "type to convert")
	flags.StringVar(&o.action, "action", "", "convert the argument type of this action")
	flags.StringVar(&o.table, "table", "", "convert the row type of this table")
	flags.BoolVar(&o.pretty, "pretty", false, "indent JSON output")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newNameCmd(),
		newABI2BinCmd(),
		newABI2JSONCmd(o),
		newJSON2HexCmd(o),
		newHex2JSONCmd(o),
		newTypeCmd(o),
		newExploreCmd(o),
	)
	return root
}

func (o *options) setupLogger() error {
	o.log = zap.NewNop()
	if !o.verbose {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.log = l
	abieos.SetLogger(l)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
