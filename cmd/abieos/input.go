package main

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wippyai/abieos"
)

var errNoABI = errors.New("an ABI is required: use --abi or --abi-hex")

// loadContract registers the ABI named by the flags and returns its handle.
func (o *options) loadContract() (*abieos.Contract, error) {
	opts := abieos.DefaultOptions()
	opts.Logger = o.log
	ctx := abieos.New(opts)

	k, err := ctx.Contract(o.contract)
	if err != nil {
		return nil, err
	}

	switch {
	case o.abiHex != "":
		err = k.LoadABI(abieos.AbiHex, []byte(o.abiHex))
	case o.abiFile != "":
		data, rerr := os.ReadFile(o.abiFile)
		if rerr != nil {
			return nil, fmt.Errorf("read ABI: %w", rerr)
		}
		format := abieos.DetectABIFormat(data)
		o.log.Sugar().Debugf("loading %s as %s", o.abiFile, format)
		err = k.LoadABI(format, data)
	default:
		return nil, errNoABI
	}
	if err != nil {
		return nil, fmt.Errorf("load ABI: %w", err)
	}
	return k, nil
}

// resolveType picks the type to convert from --type, --action or --table.
func (o *options) resolveType(k *abieos.Contract) (string, error) {
	switch {
	case o.typeName != "":
		return o.typeName, nil
	case o.action != "":
		return k.TypeForAction(o.action)
	case o.table != "":
		return k.TypeForTable(o.table)
	}
	return "", errors.New("a type is required: use --type, --action or --table")
}

// readInput returns the first argument or, when there is none, the whole of
// stdin. An interactive stdin is refused rather than waited on.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errors.New("no input: pass it as an argument or pipe it on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// readFileOrStdin reads the file named by the first argument, or stdin.
func readFileOrStdin(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", args[0], err)
		}
		return data, nil
	}
	return readInput(cmd, nil)
}

func (o *options) writeJSON(w io.Writer, text string) error {
	if o.pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
			return fmt.Errorf("indent output: %w", err)
		}
		text = buf.String()
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func upperHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}
