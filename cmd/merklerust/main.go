// Command merklerust is the host front end for the merkle package. It
// reads hex encoded leaves or trees, fixes the node hash to a concrete
// digest, runs the requested tree or proof operation, and reports results
// on stdout with failures as non zero exits.
package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/stoyanov-kaloyan/merklerust/hashes"
	"github.com/stoyanov-kaloyan/merklerust/merkle"
)

func main() {
	var log *zap.Logger

	app := &cli.App{
		Name:  "merklerust",
		Usage: "build merkle trees and produce or check inclusion proofs",
		Description: `Builds binary merkle trees in the flat heap layout over 32 byte leaf
hashes, generates single and multi leaf inclusion proofs, verifies them
against a root, validates tree structure and renders trees for inspection.

Leaf and tree files contain one lowercase hex hash per line; pass "-" to
read from stdin. Tree files list all 2n-1 nodes, root first.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "hash",
				Value:   "sha256",
				Usage:   "node hash to combine children with: sha256 or keccak256",
				EnvVars: []string{"MERKLERUST_HASH"},
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if name := c.String("hash"); name != "sha256" && name != "keccak256" {
				return errors.Errorf("unknown node hash %q", name)
			}
			var err error
			if c.Bool("debug") {
				log, err = zap.NewDevelopment()
			} else {
				log, err = zap.NewProduction()
			}
			return err
		},
		After: func(c *cli.Context) error {
			if log != nil {
				_ = log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "build",
				Usage: "build a tree from leaves and print its root",
				Flags: []cli.Flag{
					leavesFlag(),
					&cli.BoolFlag{Name: "print-tree", Usage: "print every node, root first"},
				},
				Action: func(c *cli.Context) error {
					tree, err := buildFromFile(c)
					if err != nil {
						return err
					}
					log.Debug("tree built", zap.Int("nodes", len(tree)))
					if c.Bool("print-tree") {
						for _, n := range tree {
							fmt.Println(hex.EncodeToString(n))
						}
						return nil
					}
					fmt.Println(hex.EncodeToString(tree[0]))
					return nil
				},
			},
			{
				Name:  "proof",
				Usage: "generate the inclusion proof for one leaf",
				Flags: []cli.Flag{
					leavesFlag(),
					&cli.IntFlag{Name: "index", Usage: "leaf position in input order", Required: true},
				},
				Action: func(c *cli.Context) error {
					tree, err := buildFromFile(c)
					if err != nil {
						return err
					}
					nodeIndex := merkle.TreeIndex(len(tree), c.Int("index"))
					proof, err := merkle.InclusionProof(tree, nodeIndex)
					if err != nil {
						return err
					}
					return writeJSON(proofDoc{
						LeafIndex: c.Int("index"),
						Leaf:      hex.EncodeToString(tree[nodeIndex]),
						Proof:     encodeAll(proof),
					})
				},
			},
			{
				Name:  "verify",
				Usage: "check a single leaf proof against a root",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "root", Usage: "expected root (hex)", Required: true},
					&cli.StringFlag{Name: "proof", Usage: "proof document file, as emitted by the proof command", Required: true},
				},
				Action: func(c *cli.Context) error {
					root, err := decodeHashArg(c.String("root"))
					if err != nil {
						return err
					}
					var doc proofDoc
					if err := readJSON(c.String("proof"), &doc); err != nil {
						return err
					}
					leaf, proof, err := doc.decode()
					if err != nil {
						return err
					}
					ok, err := merkle.VerifyInclusion(root, leaf, proof, nodeHash(c))
					if err != nil {
						return err
					}
					return report(log, ok)
				},
			},
			{
				Name:  "multiproof",
				Usage: "generate the compacted proof for several leaves",
				Flags: []cli.Flag{
					leavesFlag(),
					&cli.StringFlag{Name: "indices", Usage: "comma separated leaf positions in input order", Required: true},
				},
				Action: func(c *cli.Context) error {
					tree, err := buildFromFile(c)
					if err != nil {
						return err
					}
					leafIndices, err := parseIndices(c.String("indices"))
					if err != nil {
						return err
					}
					nodeIndices := make([]int, len(leafIndices))
					for i, li := range leafIndices {
						nodeIndices[i] = merkle.TreeIndex(len(tree), li)
					}
					mp, err := merkle.InclusionMultiProof(tree, nodeIndices)
					if err != nil {
						return err
					}
					return writeJSON(multiProofDoc{
						Leaves:     encodeAll(mp.Leaves),
						Proof:      encodeAll(mp.Proof),
						ProofFlags: mp.ProofFlags,
					})
				},
			},
			{
				Name:  "verify-multi",
				Usage: "check a multiproof against a root",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "root", Usage: "expected root (hex)", Required: true},
					&cli.StringFlag{Name: "multiproof", Usage: "multiproof document file", Required: true},
				},
				Action: func(c *cli.Context) error {
					root, err := decodeHashArg(c.String("root"))
					if err != nil {
						return err
					}
					var doc multiProofDoc
					if err := readJSON(c.String("multiproof"), &doc); err != nil {
						return err
					}
					mp, err := doc.decode()
					if err != nil {
						return err
					}
					ok, err := merkle.VerifyMultiInclusion(root, mp, nodeHash(c))
					if err != nil {
						return err
					}
					return report(log, ok)
				},
			},
			{
				Name:  "validate",
				Usage: "check the structural integrity of a full tree",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tree", Usage: "tree file, all nodes root first", Required: true},
				},
				Action: func(c *cli.Context) error {
					tree, err := readHashLines(c.String("tree"))
					if err != nil {
						return err
					}
					if !merkle.IsValidTree(tree, nodeHash(c)) {
						return errors.New("tree is structurally invalid")
					}
					fmt.Println("ok")
					return nil
				},
			},
			{
				Name:  "render",
				Usage: "print a tree as an indented branch diagram",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "tree", Usage: "tree file, all nodes root first", Required: true},
				},
				Action: func(c *cli.Context) error {
					tree, err := readHashLines(c.String("tree"))
					if err != nil {
						return err
					}
					out, err := merkle.RenderTree(tree)
					if err != nil {
						return err
					}
					fmt.Println(out)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		if log != nil {
			log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func leavesFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "leaves",
		Usage:    "leaf file, one hex hash per line (\"-\" for stdin)",
		Required: true,
	}
}

func nodeHash(c *cli.Context) merkle.NodeHash {
	if c.String("hash") == "keccak256" {
		return hashes.Keccak256Node
	}
	return hashes.SHA256Node
}

func buildFromFile(c *cli.Context) ([][]byte, error) {
	leaves, err := readHashLines(c.String("leaves"))
	if err != nil {
		return nil, err
	}
	return merkle.BuildHashes(leaves, nodeHash(c))
}

func readHashLines(path string) ([][]byte, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening hash file")
		}
		defer f.Close()
		r = f
	}

	var hashValues [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		value, err := hex.DecodeString(line)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding line %d", len(hashValues)+1)
		}
		hashValues = append(hashValues, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading hash file")
	}
	return hashValues, nil
}

func decodeHashArg(s string) ([]byte, error) {
	value, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, errors.Wrap(err, "decoding hash argument")
	}
	return value, nil
}

func parseIndices(s string) ([]int, error) {
	var indices []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing index %q", part)
		}
		indices = append(indices, i)
	}
	return indices, nil
}

type proofDoc struct {
	LeafIndex int      `json:"leafIndex"`
	Leaf      string   `json:"leaf"`
	Proof     []string `json:"proof"`
}

func (d proofDoc) decode() ([]byte, [][]byte, error) {
	leaf, err := decodeHashArg(d.Leaf)
	if err != nil {
		return nil, nil, err
	}
	proof, err := decodeAll(d.Proof)
	if err != nil {
		return nil, nil, err
	}
	return leaf, proof, nil
}

type multiProofDoc struct {
	Leaves     []string `json:"leaves"`
	Proof      []string `json:"proof"`
	ProofFlags []bool   `json:"proofFlags"`
}

func (d multiProofDoc) decode() (merkle.MultiProof, error) {
	leaves, err := decodeAll(d.Leaves)
	if err != nil {
		return merkle.MultiProof{}, err
	}
	proof, err := decodeAll(d.Proof)
	if err != nil {
		return merkle.MultiProof{}, err
	}
	return merkle.MultiProof{Leaves: leaves, Proof: proof, ProofFlags: d.ProofFlags}, nil
}

func encodeAll(values [][]byte) []string {
	encoded := make([]string, len(values))
	for i, v := range values {
		encoded[i] = hex.EncodeToString(v)
	}
	return encoded
}

func decodeAll(values []string) ([][]byte, error) {
	decoded := make([][]byte, len(values))
	for i, v := range values {
		var err error
		if decoded[i], err = decodeHashArg(v); err != nil {
			return nil, err
		}
	}
	return decoded, nil
}

func writeJSON(doc any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func readJSON(path string, doc any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading document")
	}
	return errors.Wrap(json.Unmarshal(data, doc), "parsing document")
}

func report(log *zap.Logger, ok bool) error {
	if !ok {
		return errors.New("verification failed")
	}
	log.Info("verified")
	fmt.Println("ok")
	return nil
}
