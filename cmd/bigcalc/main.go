package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/peterh/liner"

	"bignum/internal/bignum"
)

func main() {
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	vars := map[string]bignum.BigUint{}

	fmt.Println("bignum interactive calculator.")
	fmt.Println("Available commands: add/sub/mul/square/div/mod/pow/gcd/lcm/modadd/modsub/modmul/set/exit")
	fmt.Println("Operands may be a decimal literal or $name referencing a value set with 'set'.")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("bignum> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println("Aborted")
				continue
			}
			break
		}
		line.AppendHistory(input)

		args := strings.Fields(strings.TrimSpace(input))
		if len(args) == 0 {
			continue
		}
		cmd := args[0]

		switch cmd {
		case "add", "sub", "mul", "div", "mod", "pow", "gcd", "lcm":
			if len(args) < 3 {
				fmt.Printf("Usage: %s <a> <b>\n", cmd)
				continue
			}
			a, err := resolve(vars, args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			b, err := resolve(vars, args[2])
			if err != nil {
				fmt.Println(err)
				continue
			}
			runBinary(cmd, a, b)

		case "square":
			if len(args) < 2 {
				fmt.Println("Usage: square <a>")
				continue
			}
			a, err := resolve(vars, args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Printf("%s^2 = %s\n", a, a.Square())

		case "modadd", "modsub", "modmul":
			if len(args) < 4 {
				fmt.Printf("Usage: %s <a> <b> <m>\n", cmd)
				continue
			}
			a, err := resolve(vars, args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			b, err := resolve(vars, args[2])
			if err != nil {
				fmt.Println(err)
				continue
			}
			m, err := resolve(vars, args[3])
			if err != nil {
				fmt.Println(err)
				continue
			}
			runModular(cmd, a, b, m)

		case "set":
			if len(args) < 3 {
				fmt.Println("Usage: set <name> <value>")
				continue
			}
			v, err := resolve(vars, args[2])
			if err != nil {
				fmt.Println(err)
				continue
			}
			vars[args[1]] = v
			fmt.Printf("$%s = %s\n", args[1], v)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func resolve(vars map[string]bignum.BigUint, token string) (bignum.BigUint, error) {
	if strings.HasPrefix(token, "$") {
		v, ok := vars[token[1:]]
		if !ok {
			return bignum.BigUint{}, fmt.Errorf("undefined variable %s", token)
		}
		return v, nil
	}
	v, err := bignum.FromBase10String(token)
	if err != nil {
		return bignum.BigUint{}, fmt.Errorf("invalid number %q: %w", token, err)
	}
	return v, nil
}

func runBinary(cmd string, a, b bignum.BigUint) {
	switch cmd {
	case "add":
		fmt.Printf("%s + %s = %s\n", a, b, a.Add(b))
	case "sub":
		r, err := a.Sub(b)
		if err != nil {
			fmt.Printf("%s - %s failed: %v\n", a, b, err)
			return
		}
		fmt.Printf("%s - %s = %s\n", a, b, r)
	case "mul":
		fmt.Printf("%s * %s = %s\n", a, b, a.Mul(b))
	case "div":
		q, r, err := a.DivMod(b)
		if err != nil {
			fmt.Printf("%s / %s failed: %v\n", a, b, err)
			return
		}
		fmt.Printf("%s / %s = %s remainder %s\n", a, b, q, r)
	case "mod":
		r, err := a.Mod(b)
		if err != nil {
			fmt.Printf("%s mod %s failed: %v\n", a, b, err)
			return
		}
		fmt.Printf("%s mod %s = %s\n", a, b, r)
	case "pow":
		r, err := a.Pow(b)
		if err != nil {
			fmt.Printf("%s ^ %s failed: %v\n", a, b, err)
			return
		}
		fmt.Printf("%s ^ %s = %s\n", a, b, r)
	case "gcd":
		fmt.Printf("gcd(%s, %s) = %s\n", a, b, bignum.GCD(a, b))
	case "lcm":
		r, err := bignum.LCM(a, b)
		if err != nil {
			fmt.Printf("lcm(%s, %s) failed: %v\n", a, b, err)
			return
		}
		fmt.Printf("lcm(%s, %s) = %s\n", a, b, r)
	}
}

func runModular(cmd string, a, b, m bignum.BigUint) {
	var r bignum.BigUint
	var err error
	switch cmd {
	case "modadd":
		r, err = bignum.ModAdd(a, b, m)
	case "modsub":
		r, err = bignum.ModSub(a, b, m)
	case "modmul":
		r, err = bignum.ModMul(a, b, m)
	}
	if err != nil {
		fmt.Printf("%s(%s, %s, %s) failed: %v\n", cmd, a, b, m, err)
		return
	}
	fmt.Printf("%s(%s, %s, %s) = %s\n", cmd, a, b, m, r)
}
