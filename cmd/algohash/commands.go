package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vocdoni/algohash"
	"github.com/vocdoni/algohash/merkle"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available instantiations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tFAMILY\tFIELD\tWIDTH\tRATE\tCAPACITY\tDIGEST\tROUNDS\tALPHA")
			for _, name := range algohash.Names() {
				in, err := algohash.Lookup(name)
				if err != nil {
					return err
				}
				i := in.Info()
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					i.Name, i.Family, i.Field, i.StateSize, i.Rate, i.Capacity, i.DigestSize, i.Rounds, i.Alpha)
			}
			return w.Flush()
		},
	}
}

func (a *app) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [elements...]",
		Short: "Hash field elements given in decimal or 0x hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.instance()
			if err != nil {
				return err
			}
			elems := make([]*big.Int, len(args))
			for i, s := range args {
				v, ok := new(big.Int).SetString(s, 0)
				if !ok {
					return errors.Errorf("argument %d: %q is not an integer", i, s)
				}
				elems[i] = v
			}
			d, err := in.Hash(elems)
			if err != nil {
				return errors.Wrap(err, "hash")
			}
			a.log.Debug().Int("elements", len(elems)).Msg("hashed")
			return a.printDigest(cmd.OutOrStdout(), in, d)
		},
	}
}

func (a *app) hashBytesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-bytes [file|-]",
		Short: "Hash the contents of a file, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.instance()
			if err != nil {
				return err
			}
			src := "-"
			if len(args) == 1 {
				src = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), src)
			if err != nil {
				return err
			}
			a.log.Debug().Str("source", src).Int("bytes", len(data)).Msg("hashing bytes")
			return a.printDigest(cmd.OutOrStdout(), in, in.HashBytes(data))
		},
	}
}

func (a *app) mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <digest> <digest>",
		Short: "Merge two hex-encoded digests into one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.instance()
			if err != nil {
				return err
			}
			var ds [2]algohash.Digest
			for i, s := range args {
				b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
				if err != nil {
					return errors.Wrapf(err, "digest %d", i)
				}
				if ds[i], err = in.DecodeDigest(b); err != nil {
					return errors.Wrapf(err, "digest %d", i)
				}
			}
			d, err := in.Merge(ds[0], ds[1])
			if err != nil {
				return errors.Wrap(err, "merge")
			}
			return a.printDigest(cmd.OutOrStdout(), in, d)
		},
	}
}

func (a *app) merkleCmd() *cobra.Command {
	var leaf int
	cmd := &cobra.Command{
		Use:   "merkle <file>...",
		Short: "Compute the merkle root of the byte hashes of files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.instance()
			if err != nil {
				return err
			}
			leaves := make([]algohash.Digest, len(args))
			for i, name := range args {
				data, err := readInput(cmd.InOrStdin(), name)
				if err != nil {
					return err
				}
				leaves[i] = in.HashBytes(data)
			}
			workers := a.v.GetInt("workers")
			levels, err := merkle.Levels(cmd.Context(), leaves, in.Merge, workers)
			if err != nil {
				return errors.Wrap(err, "build tree")
			}
			root := levels[len(levels)-1][0]
			a.log.Debug().Int("leaves", len(leaves)).Int("levels", len(levels)).Int("workers", workers).Msg("built tree")
			if err := a.printDigest(cmd.OutOrStdout(), in, root); err != nil {
				return err
			}
			if leaf < 0 {
				return nil
			}
			return a.printProof(cmd.OutOrStdout(), in, levels, root, leaf)
		},
	}
	cmd.Flags().IntVar(&leaf, "proof", -1, "also print and check the inclusion proof of this leaf")
	return cmd
}

func (a *app) printProof(w io.Writer, in algohash.Instance, levels [][]algohash.Digest, root algohash.Digest, leaf int) error {
	proof, err := merkle.Proof(levels, leaf)
	if err != nil {
		return errors.Wrap(err, "proof")
	}
	for _, s := range proof {
		side := "right"
		if s.Left {
			side = "left"
		}
		fmt.Fprintf(w, "%s ", side)
		if err := a.printDigest(w, in, s.Sibling); err != nil {
			return err
		}
	}
	ok, err := merkle.Verify(root, levels[0][leaf], proof, in.Merge, equalDigests)
	if err != nil {
		return errors.Wrap(err, "verify proof")
	}
	if !ok {
		return errors.Errorf("proof of leaf %d does not reach the root", leaf)
	}
	return nil
}

func (a *app) printDigest(w io.Writer, in algohash.Instance, d algohash.Digest) error {
	if a.v.GetString("format") == "hex" {
		b, err := in.EncodeDigest(d)
		if err != nil {
			return errors.Wrap(err, "encode digest")
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(b))
		return err
	}
	parts := make([]string, len(d))
	for i, v := range d {
		parts[i] = v.String()
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func readInput(stdin io.Reader, src string) ([]byte, error) {
	if src == "-" {
		data, err := io.ReadAll(stdin)
		return data, errors.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(src)
	return data, errors.Wrapf(err, "read %s", src)
}

func equalDigests(a, b algohash.Digest) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Cmp(b[i]) != 0 {
			return false
		}
	}
	return true
}
