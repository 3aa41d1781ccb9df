package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/strandfield/libmathxcore"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mathxdemo",
		Short: "Arbitrary-precision arithmetic command-line demo",
	}

	var precBits uint

	factorialCmd := &cobra.Command{
		Use:   "factorial N",
		Short: "Print N!",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			result, err := mathx.Factorial(n)
			if err != nil {
				return fmt.Errorf("factorial: %w", err)
			}
			fmt.Println(result.String())
			return nil
		},
	}

	gcdCmd := &cobra.Command{
		Use:   "gcd A B",
		Short: "Print gcd(A, B) and the Bezout coefficients",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ok := new(mathx.Int).SetString(args[0])
			if !ok {
				return fmt.Errorf("gcd: invalid integer %q", args[0])
			}
			b, ok := new(mathx.Int).SetString(args[1])
			if !ok {
				return fmt.Errorf("gcd: invalid integer %q", args[1])
			}
			g, u, v := mathx.ExtendedGCD(a, b)
			fmt.Printf("gcd=%s u=%s v=%s\n", g, u, v)
			return nil
		},
	}

	isqrtCmd := &cobra.Command{
		Use:   "isqrt N",
		Short: "Print floor(sqrt(N))",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, ok := new(mathx.Int).SetString(args[0])
			if !ok {
				return fmt.Errorf("isqrt: invalid integer %q", args[0])
			}
			root, err := new(mathx.Int).Sqrt(n)
			if err != nil {
				return fmt.Errorf("isqrt: %w", err)
			}
			fmt.Println(root.String())
			return nil
		},
	}

	ratCmd := &cobra.Command{
		Use:   "rat OP A/B C/D",
		Short: "Evaluate a rational add|sub|mul|div",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseRat(args[1])
			if err != nil {
				return err
			}
			y, err := parseRat(args[2])
			if err != nil {
				return err
			}
			result := new(mathx.Rat)
			switch args[0] {
			case "add":
				result.Add(x, y)
			case "sub":
				result.Sub(x, y)
			case "mul":
				result.Mul(x, y)
			case "div":
				if _, err := result.Div(x, y); err != nil {
					return fmt.Errorf("rat div: %w", err)
				}
			default:
				return fmt.Errorf("rat: unknown operation %q", args[0])
			}
			fmt.Println(result.String())
			return nil
		},
	}

	piCmd := &cobra.Command{
		Use:   "pi",
		Short: "Print pi to --prec bits of precision",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := mathx.Pi(precBits)
			if err != nil {
				return fmt.Errorf("pi: %w", err)
			}
			fmt.Println(p.String())
			return nil
		},
	}
	piCmd.Flags().UintVar(&precBits, "prec", mathx.DefaultPrecision(), "working precision, in bits")

	rootCmd.AddCommand(factorialCmd, gcdCmd, isqrtCmd, ratCmd, piCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseInt(s string) (int, error) {
	n := 0
	neg := false
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i = 1
	}
	if i == len(s) {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid integer %q", s)
		}
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseRat(s string) (*mathx.Rat, error) {
	num, den := s, "1"
	for i := 0; i < len(s); i++ {
		if s[i] == '/' {
			num, den = s[:i], s[i+1:]
			break
		}
	}
	n, ok := new(mathx.Int).SetString(num)
	if !ok {
		return nil, fmt.Errorf("invalid rational %q", s)
	}
	d, ok := new(mathx.Int).SetString(den)
	if !ok {
		return nil, fmt.Errorf("invalid rational %q", s)
	}
	if d.IsZero() {
		return nil, fmt.Errorf("invalid rational %q: zero denominator", s)
	}
	return new(mathx.Rat).SetFrac(n, d), nil
}
