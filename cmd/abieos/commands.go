package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/abieos"
)

func newNameCmd() *cobra.Command {
	var decode bool
	cmd := &cobra.Command{
		Use:   "name <value>...",
		Short: "Convert names to and from their 64-bit values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				if decode {
					v, err := strconv.ParseUint(arg, 0, 64)
					if err != nil {
						return fmt.Errorf("parse %q: %w", arg, err)
					}
					fmt.Fprintln(out, abieos.NameToString(v))
					continue
				}
				v, err := abieos.StringToName(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "convert 64-bit values to names")
	return cmd
}

func newABI2BinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abi2bin [file]",
		Short: "Convert a JSON ABI to hex of its binary form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFileOrStdin(cmd, args)
			if err != nil {
				return err
			}
			bin, err := abieos.NewWithDefaults().ABIJSONToBin(string(data))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), upperHex(bin))
			return err
		},
	}
}

func newABI2JSONCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "abi2json [file]",
		Short: "Convert a hex or binary ABI to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFileOrStdin(cmd, args)
			if err != nil {
				return err
			}
			if abieos.DetectABIFormat(data) == abieos.AbiHex {
				if data, err = hex.DecodeString(string(bytes.TrimSpace(data))); err != nil {
					return fmt.Errorf("decode hex: %w", err)
				}
			}
			text, err := abieos.NewWithDefaults().ABIBinToJSON(data)
			if err != nil {
				return err
			}
			return o.writeJSON(cmd.OutOrStdout(), text)
		},
	}
}

func newJSON2HexCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "json2hex [json]",
		Short: "Serialize a JSON value to hex",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := o.loadContract()
			if err != nil {
				return err
			}
			typ, err := o.resolveType(k)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := k.JSONToHex(typ, string(input))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newHex2JSONCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "hex2json [hex]",
		Short: "Deserialize hex to a JSON value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := o.loadContract()
			if err != nil {
				return err
			}
			typ, err := o.resolveType(k)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := k.HexToJSON(typ, string(input))
			if err != nil {
				return err
			}
			return o.writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newTypeCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:       "type <action|table|result> <name>",
		Short:     "Show the type bound to an action, table or action result",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"action", "table", "result"},
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := o.loadContract()
			if err != nil {
				return err
			}
			var typ string
			switch strings.ToLower(args[0]) {
			case "action":
				typ, err = k.TypeForAction(args[1])
			case "table":
				typ, err = k.TypeForTable(args[1])
			case "result":
				typ, err = k.TypeForActionResult(args[1])
			default:
				return fmt.Errorf("unknown binding kind %q: want action, table or result", args[0])
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), typ)
			return err
		},
	}
}
