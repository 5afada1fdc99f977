// stacks-signer CLI - Stacks spending-condition inspector
//
// This CLI demonstrates the stacks-signer library's capabilities for
// decoding, canonicalizing and inspecting the authorization section of a
// Stacks transaction before it is signed.
//
// Example usage:
//   # Decode a spending condition and show the signer details
//   stacks-signer decode 001111...01c8
//
//   # Show the canonical pre-signature placeholder
//   stacks-signer sighash 001111...01c8
//
//   # Canonicalize the buffer in place and print it
//   stacks-signer clear 001111...01c8
//
//   # Convert a legacy base58check address to its c32 form
//   stacks-signer b58 1FzTxL9Mxnm2fdmnQEArfhzJHevwbvcH6d
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/suffix-labs/stacks-signer/pkg/address"
	"github.com/suffix-labs/stacks-signer/pkg/auth"
	"github.com/suffix-labs/stacks-signer/pkg/display"
)

const version = "0.1.0"

// microSTXDecimals converts fee values to whole STX for display.
const microSTXDecimals = 6

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "decode":
		cmdDecode()
	case "sighash":
		cmdSighash()
	case "clear":
		cmdClear()
	case "b58":
		cmdB58()
	case "version":
		cmdVersion()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stacks-signer - Stacks spending-condition inspector

Usage:
  stacks-signer <command> [options]

Commands:
  decode <hex>       Decode a spending condition and show signer details
  sighash <hex>      Show the canonical pre-signature placeholder
  clear <hex>        Canonicalize the buffer in place and print it
  b58 <address>      Convert a base58check address to c32
  version            Show version information
  help               Show this help message`)
}

// argBytes decodes the single hex argument every buffer-taking command
// expects.
func argBytes(cmd string) []byte {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: stacks-signer %s <hex>\n", cmd)
		os.Exit(1)
	}
	buf, err := hex.DecodeString(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid hex input: %v\n", err)
		os.Exit(1)
	}
	return buf
}

func cmdDecode() {
	buf := argBytes("decode")

	cond, leftover, err := auth.ParseTransactionSpendingCondition(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode spending condition: %v\n", err)
		os.Exit(1)
	}

	signer := cond.Signer()
	fmt.Printf("Hash mode:        %s\n", signer.HashMode())

	mainnet, err := cond.SignerAddress(auth.NetworkMainnet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to derive mainnet address: %v\n", err)
		os.Exit(1)
	}
	testnet, err := cond.SignerAddress(auth.NetworkTestnet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to derive testnet address: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Mainnet address:  %s\n", mainnet)
	fmt.Printf("Testnet address:  %s\n", testnet)
	fmt.Printf("Nonce:            %s\n", cond.NonceString())

	stx, err := display.FixedPoint(cond.Fee(), microSTXDecimals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to format fee: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Fee:              %s uSTX (%s STX)\n", cond.FeeString(), stx)

	if cond.IsSinglesig() {
		witness := cond.SinglesigWitness()
		fmt.Printf("Witness:          singlesig, %s key\n", witness.KeyEncoding())
	} else {
		witness := cond.MultisigWitness()
		fmt.Printf("Witness:          multisig, %d of %d\n",
			witness.RequiredSignatures(), witness.NumFields())
		for i, field := range witness.Fields() {
			kind := "public key"
			if field.IsSignature() {
				kind = "signature"
			}
			fmt.Printf("  field %d:        %s, %s\n", i, kind, field.Encoding())
		}
	}

	if len(leftover) > 0 {
		fmt.Printf("Unconsumed bytes: %d\n", len(leftover))
	}
}

func cmdSighash() {
	buf := argBytes("sighash")

	cond, _, err := auth.ParseTransactionSpendingCondition(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode spending condition: %v\n", err)
		os.Exit(1)
	}

	var placeholder [128]byte
	n, err := cond.InitSighash(placeholder[:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build sighash placeholder: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%x\n", placeholder[:n])
}

func cmdClear() {
	buf := argBytes("clear")

	cond, _, err := auth.ParseTransactionSpendingCondition(buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode spending condition: %v\n", err)
		os.Exit(1)
	}

	cond.ClearSignature()
	fmt.Printf("%x\n", buf)
}

func cmdB58() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: stacks-signer b58 <address>")
		os.Exit(1)
	}

	c32, err := address.FromBase58Address(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert address: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(c32)
}

func cmdVersion() {
	fmt.Printf("stacks-signer %s\n", version)
}
