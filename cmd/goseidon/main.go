// goseidon hashes byte streams and field-element leaf sets with Poseidon2.
//
// Usage:
//
//	goseidon -instance vesta hash < file
//	goseidon -instance goldilocks merkle 1 2 3 4
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/goseidon/goseidon/arith"
	"github.com/goseidon/goseidon/field"
	"github.com/goseidon/goseidon/logger"
	"github.com/goseidon/goseidon/merkle"
	"github.com/goseidon/goseidon/poseidon2"
)

func main() {
	instance := flag.String("instance", "goldilocks", "poseidon2 instance: goldilocks or vesta")
	flag.Parse()

	log := logger.For("cli")

	args := flag.Args()
	if len(args) == 0 {
		log.Error().Msg("expected a command: hash or merkle")
		os.Exit(1)
	}

	var err error
	switch args[0] {
	case "hash":
		err = runHash(*instance)
	case "merkle":
		err = runMerkle(*instance, args[1:])
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func runHash(instance string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return err
	}

	var digest [poseidon2.DigestSize]byte
	switch instance {
	case "goldilocks":
		h := poseidon2.NewGoldilocksHasher()
		h.Write(data)
		digest = h.Sum()
	case "vesta":
		h := poseidon2.NewVestaHasher()
		h.Write(data)
		digest = h.Sum()
	default:
		return fmt.Errorf("unknown instance %q", instance)
	}

	log := logger.For("cli")
	log.Info().Int("bytes", len(data)).Str("instance", instance).Msg("hashed input")
	fmt.Println(hex.EncodeToString(digest[:]))
	return nil
}

func runMerkle(instance string, leaves []string) error {
	if len(leaves) == 0 {
		return fmt.Errorf("merkle needs at least one decimal leaf")
	}

	var root string
	switch instance {
	case "goldilocks":
		p := field.Goldilocks()
		elems := make([]field.Element64, len(leaves))
		for i, s := range leaves {
			elems[i] = p.New(arith.U64FromDecimal(s))
		}
		root = merkle.Accumulate(poseidon2.NewGoldilocksPermutation(), elems).Root().String()
	case "vesta":
		p := field.Vesta()
		elems := make([]field.Element256, len(leaves))
		for i, s := range leaves {
			elems[i] = p.New(arith.U256FromDecimal(s))
		}
		root = merkle.Accumulate(poseidon2.NewVestaPermutation(), elems).Root().String()
	default:
		return fmt.Errorf("unknown instance %q", instance)
	}

	log := logger.For("cli")
	log.Info().Int("leaves", len(leaves)).Str("instance", instance).Msg("accumulated tree")
	fmt.Println(root)
	return nil
}
