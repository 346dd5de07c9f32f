package asm

import (
	"fmt"
	"strings"

	"github.com/parthpant/go8085/pkg/opcode"
)

// Result is the output of a successful assembly: the binary image, a
// human-readable listing (address, mnemonic key and any immediate value
// per line), and the symbol table pass 1 built while walking labels.
type Result struct {
	Binary      []byte
	Listing     string
	SymbolTable map[string]uint16
}

// Assemble runs the two-pass assembler over src: pass 1 walks every
// token to resolve label addresses, advancing the address cursor by
// ImmBytes+1 per mnemonic; pass 2 walks the tokens again, building each
// instruction's opcode key from its mnemonic and register operands and
// emitting the looked-up byte plus any immediate.
func Assemble(src string) (Result, error) {
	tokens, err := Lex(src)
	if err != nil {
		return Result{}, err
	}

	symtab := pass1(tokens)
	bin, listing, err := pass2(tokens, symtab)
	if err != nil {
		return Result{}, err
	}

	return Result{Binary: bin, Listing: listing, SymbolTable: symtab}, nil
}

func pass1(tokens []Token) map[string]uint16 {
	symtab := make(map[string]uint16)
	addr := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokMnemonic:
			addr += tok.ImmBytes + 1
		case TokLabel:
			symtab[tok.Text] = uint16(addr)
		}
	}
	return symtab
}

func pass2(tokens []Token, symtab map[string]uint16) ([]byte, string, error) {
	var bin []byte
	var listing strings.Builder
	addr := 0
	i := 0

	for i < len(tokens) {
		tok := tokens[i]
		switch tok.Kind {
		case TokLabel:
			i++
			continue
		case TokMnemonic:
			key := tok.Text
			i++
			for n := tok.NumRegOperands; n > 0; n-- {
				if i >= len(tokens) || tokens[i].Kind != TokOperand {
					return nil, "", &SyntaxError{Line: tok.Line, Token: tok.Text, Cause: ErrIncompleteInstruction}
				}
				key += "_" + tokens[i].Text
				i++
			}

			op, ok := opcode.ByKey[key]
			if !ok {
				return nil, "", &SyntaxError{Line: tok.Line, Token: key, Cause: ErrUnknownOpcodeKey}
			}
			bin = append(bin, op)
			fmt.Fprintf(&listing, "%#06x\t%s", addr, key)

			if tok.ImmBytes > 0 {
				if i >= len(tokens) {
					return nil, "", &SyntaxError{Line: tok.Line, Token: tok.Text, Cause: ErrIncompleteInstruction}
				}
				var val uint16
				switch tokens[i].Kind {
				case TokData:
					val = uint16(tokens[i].Value)
				case TokSymbol:
					v, ok := symtab[tokens[i].Text]
					if !ok {
						return nil, "", &SyntaxError{Line: tokens[i].Line, Token: tokens[i].Text, Cause: ErrUnresolvedSymbol}
					}
					val = v
				default:
					return nil, "", &SyntaxError{Line: tokens[i].Line, Token: tokens[i].Text, Cause: ErrStrayToken}
				}

				bin = append(bin, uint8(val&0x00ff))
				if tok.ImmBytes == 2 {
					bin = append(bin, uint8(val>>8))
					fmt.Fprintf(&listing, " %#06x", val)
				} else {
					fmt.Fprintf(&listing, " %#02x", val)
				}
				i++
			}

			addr += tok.ImmBytes + 1
			listing.WriteByte('\n')

		default:
			return nil, "", &SyntaxError{Line: tok.Line, Token: tok.Text, Cause: ErrStrayToken}
		}
	}

	return bin, listing.String(), nil
}
