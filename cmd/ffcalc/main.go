package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dlewis/ffcalc/gfcalc"
)

func usage() {
	fmt.Println(`usage: ffcalc -p <prime> -n <degree> -a <coeffs> -b <coeffs> -op <add|sub|mul|div>

Computes a single GF(p^n) operation and prints the resulting element.

Flags:
  -p   <int>     field characteristic, one of the 26 supported primes (default 2)
  -n   <int>     extension degree, 1..12 (default 1)
  -a   <string>  comma-separated coefficients of the first operand, constant term first
  -b   <string>  comma-separated coefficients of the second operand, constant term first
  -op  <string>  one of add, sub, mul, div (default "add")

Example:
  ffcalc -p 2 -n 3 -a 1,1 -b 1,0,0,1 -op mul`)
	os.Exit(1)
}

func main() {
	p := flag.Int("p", 2, "field characteristic")
	n := flag.Int("n", 1, "extension degree")
	aFlag := flag.String("a", "", "comma-separated coefficients of the first operand")
	bFlag := flag.String("b", "", "comma-separated coefficients of the second operand")
	opFlag := flag.String("op", "add", "operation: add|sub|mul|div")
	flag.Usage = usage
	flag.Parse()

	if *aFlag == "" || *bFlag == "" {
		usage()
	}

	a, err := parseCoeffs(*aFlag)
	if err != nil {
		log.Fatalf("ffcalc: parsing -a: %v", err)
	}
	b, err := parseCoeffs(*bFlag)
	if err != nil {
		log.Fatalf("ffcalc: parsing -b: %v", err)
	}
	op, err := parseOp(*opFlag)
	if err != nil {
		log.Fatalf("ffcalc: %v", err)
	}

	calc, err := gfcalc.New(*p, *n)
	if err != nil {
		log.Fatalf("ffcalc: building GF(%d^%d): %v", *p, *n, err)
	}

	result, err := calc.Operate(a, b, op)
	if err != nil {
		log.Fatalf("ffcalc: %v", err)
	}

	fmt.Println(result.String())
}

func parseCoeffs(raw string) ([]int, error) {
	fields := strings.Split(raw, ",")
	out := make([]int, len(fields))

	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", f, err)
		}
		out[i] = v
	}

	return out, nil
}

func parseOp(raw string) (gfcalc.FieldOp, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "add":
		return gfcalc.OpAdd, nil
	case "sub":
		return gfcalc.OpSub, nil
	case "mul":
		return gfcalc.OpMul, nil
	case "div":
		return gfcalc.OpDiv, nil
	default:
		return 0, fmt.Errorf("unknown operation %q", raw)
	}
}
