// Command asm85 assembles and runs programs for the 8085 emulator in
// pkg/asm and pkg/cpu.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/parthpant/go8085/pkg/asm"
	"github.com/parthpant/go8085/pkg/cpu"
	"github.com/parthpant/go8085/pkg/mem"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asm85",
		Short: "8085 assembler and emulator",
	}

	var outPath, listingPath string
	assembleCmd := &cobra.Command{
		Use:   "assemble <file.asm>",
		Short: "Assemble an 8085 source file into a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			result, err := asm.Assemble(string(src))
			if err != nil {
				return fmt.Errorf("assemble %s: %w", args[0], err)
			}

			dest := outPath
			if dest == "" {
				dest = strings.TrimSuffix(args[0], ".asm") + ".bin"
			}
			if err := os.WriteFile(dest, result.Binary, 0o644); err != nil {
				return err
			}
			fmt.Printf("%s: %d bytes -> %s\n", args[0], len(result.Binary), dest)

			if listingPath != "" {
				if err := os.WriteFile(listingPath, []byte(result.Listing), 0o644); err != nil {
					return err
				}
				fmt.Printf("listing -> %s\n", listingPath)
			}
			return nil
		},
	}
	assembleCmd.Flags().StringVar(&outPath, "out", "", "output binary path (default: <file>.bin)")
	assembleCmd.Flags().StringVar(&listingPath, "listing", "", "optional listing output path")

	var memSize int
	var trace bool
	var ioPortsStr string
	runCmd := &cobra.Command{
		Use:   "run <file.bin|file.asm>",
		Short: "Load a program and run it to HLT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := loadImage(args[0])
			if err != nil {
				return err
			}

			m, err := mem.NewFromImage(image, memSize)
			if err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}
			c := cpu.New(m)
			for _, addr := range parsePortList(ioPortsStr) {
				c.AddIOPort(addr)
			}

			if trace {
				for !c.Halted() {
					pc := summary(c)
					if err := c.RunNext(); err != nil {
						return fmt.Errorf("run %s: %w", args[0], err)
					}
					fmt.Print(pc)
				}
			} else if err := c.Run(context.Background()); err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}

			fmt.Print(c.Summary())
			return nil
		},
	}
	runCmd.Flags().IntVar(&memSize, "size", 65536, "memory size in bytes")
	runCmd.Flags().BoolVar(&trace, "trace", false, "print a register dump before every instruction")
	runCmd.Flags().StringVar(&ioPortsStr, "io-ports", "", "comma-separated list of I/O port addresses to map (e.g. 0xFF,0x10)")

	disasmCmd := &cobra.Command{
		Use:   "disasm <file.bin>",
		Short: "Disassemble a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			lines, err := asm.Disassemble(image)
			if err != nil {
				return fmt.Errorf("disasm %s: %w", args[0], err)
			}
			fmt.Print(asm.Listing(lines))
			return nil
		},
	}

	rootCmd.AddCommand(assembleCmd, runCmd, disasmCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadImage assembles source files on the fly so run accepts either a
// raw binary or a .asm file directly.
func loadImage(path string) ([]byte, error) {
	if strings.HasSuffix(path, ".asm") {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		result, err := asm.Assemble(string(src))
		if err != nil {
			return nil, fmt.Errorf("assemble %s: %w", path, err)
		}
		return result.Binary, nil
	}
	return os.ReadFile(path)
}

func summary(c *cpu.CPU) string { return c.Summary() }

func parsePortList(s string) []uint8 {
	if s == "" {
		return nil
	}
	var ports []uint8
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(tok), "0x"), 16, 8)
		if err != nil {
			continue
		}
		ports = append(ports, uint8(v))
	}
	return ports
}
