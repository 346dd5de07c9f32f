package asm

import (
	"strconv"
	"strings"

	"github.com/parthpant/go8085/pkg/opcode"
)

// Lex tokenizes 8085 assembly source, grounded on asm8085.rs's
// tokenize_words/tokenize: commas are treated as whitespace, ';' starts a
// line comment, everything is folded to lowercase, and a trailing 'h' on
// a word that otherwise parses as hex always wins over a same-spelled
// mnemonic or register name — that ordering is load-bearing (a register
// named the same as a hex digit string must still end up as Data).
func Lex(src string) ([]Token, error) {
	src = strings.ReplaceAll(src, ",", " ")

	var toks []Token
	for lineNo, line := range strings.Split(src, "\n") {
		for _, word := range strings.Fields(strings.ToLower(line)) {
			if strings.HasPrefix(word, ";") {
				break
			}
			tok, err := lexWord(word, lineNo+1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		}
	}
	return toks, nil
}

func lexWord(word string, line int) (Token, error) {
	if strings.Contains(word, ":") {
		name := strings.TrimSuffix(word, ":")
		return Token{Kind: TokLabel, Text: name, Line: line}, nil
	}

	if strings.HasSuffix(word, "h") {
		if v, err := strconv.ParseInt(strings.TrimSuffix(word, "h"), 16, 32); err == nil {
			return Token{Kind: TokData, Value: int16(v), Line: line}, nil
		}
	}

	if info, ok := opcode.Mnemonics[word]; ok {
		return Token{
			Kind:           TokMnemonic,
			Text:           word,
			NumRegOperands: info.NumRegOperands,
			ImmBytes:       info.ImmBytes,
			Line:           line,
		}, nil
	}

	if opcode.Registers[word] {
		return Token{Kind: TokOperand, Text: word, Line: line}, nil
	}

	return Token{Kind: TokSymbol, Text: word, Line: line}, nil
}
