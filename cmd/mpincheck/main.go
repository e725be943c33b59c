// mpincheck is the terminal front end for the PIN validator. It runs an
// interactive session by default and a non-interactive one-shot when --pin is
// given, for scripting.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mpinguard/internal/mpin"
)

const (
	colorGreen = "\033[92m"
	colorRed   = "\033[91m"
	colorReset = "\033[0m"
)

type options struct {
	pin             string
	length          int
	birthdate       string
	spouseBirthdate string
	anniversary     string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "mpincheck",
		Short:        "Evaluate the strength of a mobile banking PIN",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service := mpin.New()
			if opts.pin != "" {
				return runOnce(cmd, service, opts)
			}
			return runInteractive(cmd, service)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.pin, "pin", "", "PIN to evaluate non-interactively")
	flags.IntVar(&opts.length, "length", 0, "PIN length, 4 or 6 (defaults to the PIN's width)")
	flags.StringVar(&opts.birthdate, "birthdate", "", "your date of birth, YYYY-MM-DD")
	flags.StringVar(&opts.spouseBirthdate, "spouse-birthdate", "", "spouse's date of birth, YYYY-MM-DD")
	flags.StringVar(&opts.anniversary, "anniversary", "", "wedding anniversary, YYYY-MM-DD")
	return cmd
}

func runOnce(cmd *cobra.Command, service *mpin.Service, opts *options) error {
	req := mpin.ValidateRequest{
		PIN:    opts.pin,
		Length: opts.length,
	}
	if req.Length == 0 {
		req.Length = len(opts.pin)
	}

	var err error
	if req.Birthdate, err = parseFlagDate(opts.birthdate); err != nil {
		return err
	}
	if req.SpouseBirthdate, err = parseFlagDate(opts.spouseBirthdate); err != nil {
		return err
	}
	if req.Anniversary, err = parseFlagDate(opts.anniversary); err != nil {
		return err
	}

	report, err := service.Validate(cmd.Context(), req)
	if err != nil {
		return err
	}
	printReport(cmd, report)
	return nil
}

func parseFlagDate(s string) (*mpin.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := mpin.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// runInteractive drives the prompt loop: demographics once, then PINs until
// the user quits. Typing "exit" at any prompt leaves the session.
func runInteractive(cmd *cobra.Command, service *mpin.Service) error {
	in := bufio.NewScanner(cmd.InOrStdin())

	line := strings.Repeat("=", 50)
	cmd.Println()
	cmd.Println(line)
	cmd.Println("  MPIN Security Validator")
	cmd.Println(line)
	cmd.Println("\nThis tool evaluates the security of your mobile PIN")
	cmd.Println("based on common patterns and personal dates.")
	cmd.Println("\nType 'exit' at any prompt to quit.")

	cmd.Println("\nDemographic information (optional, press Enter to skip)")
	req := mpin.ValidateRequest{}
	prompts := []struct {
		label string
		dest  **mpin.Date
	}{
		{"Your date of birth (YYYY-MM-DD): ", &req.Birthdate},
		{"Spouse's date of birth (YYYY-MM-DD): ", &req.SpouseBirthdate},
		{"Wedding anniversary (YYYY-MM-DD): ", &req.Anniversary},
	}
	for _, p := range prompts {
		d, quit := promptDate(cmd, in, p.label)
		if quit {
			return nil
		}
		*p.dest = d
	}

	for {
		length, quit := promptLength(cmd, in)
		if quit {
			return nil
		}
		req.Length = length

		pin, quit := promptPIN(cmd, in, length)
		if quit {
			return nil
		}
		req.PIN = pin

		report, err := service.Validate(context.Background(), req)
		if err != nil {
			return err
		}
		printReport(cmd, report)

		again, quit := promptYesNo(cmd, in, "\nValidate another PIN? (y/n): ")
		if quit || !again {
			return nil
		}
	}
}

func promptDate(cmd *cobra.Command, in *bufio.Scanner, label string) (*mpin.Date, bool) {
	for {
		answer, quit := prompt(cmd, in, label)
		if quit {
			return nil, true
		}
		if answer == "" {
			return nil, false
		}
		d, err := mpin.ParseDate(answer)
		if err != nil {
			cmd.Println("Invalid date. Use YYYY-MM-DD format or press Enter to skip.")
			continue
		}
		return &d, false
	}
}

func promptLength(cmd *cobra.Command, in *bufio.Scanner) (int, bool) {
	for {
		answer, quit := prompt(cmd, in, "\nSelect PIN length (4 or 6 digits): ")
		if quit {
			return 0, true
		}
		switch answer {
		case "4":
			return mpin.PINLength4, false
		case "6":
			return mpin.PINLength6, false
		}
		cmd.Println("PIN length must be either 4 or 6.")
	}
}

func promptPIN(cmd *cobra.Command, in *bufio.Scanner, length int) (string, bool) {
	for {
		answer, quit := prompt(cmd, in, fmt.Sprintf("Enter your %d-digit PIN: ", length))
		if quit {
			return "", true
		}
		if len(answer) != length {
			cmd.Printf("PIN must be exactly %d digits.\n", length)
			continue
		}
		if !allDigits(answer) {
			cmd.Println("PIN must contain only digits.")
			continue
		}
		return answer, false
	}
}

func promptYesNo(cmd *cobra.Command, in *bufio.Scanner, label string) (yes, quit bool) {
	for {
		answer, quit := prompt(cmd, in, label)
		if quit {
			return false, true
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, false
		case "n", "no":
			return false, false
		}
		cmd.Println("Please enter 'y' or 'n'.")
	}
}

func prompt(cmd *cobra.Command, in *bufio.Scanner, label string) (string, bool) {
	cmd.Print(label)
	if !in.Scan() {
		return "", true
	}
	answer := strings.TrimSpace(in.Text())
	if strings.EqualFold(answer, "exit") {
		return "", true
	}
	return answer, false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func printReport(cmd *cobra.Command, report *mpin.Report) {
	line := strings.Repeat("=", 50)
	cmd.Println()
	cmd.Println(line)
	cmd.Println("  MPIN Security Assessment")
	cmd.Println(line)

	strength := colorGreen + string(report.Strength) + colorReset
	if report.Strength == mpin.StrengthWeak {
		strength = colorRed + string(report.Strength) + colorReset
	}
	cmd.Println("\nPIN Strength:", strength)

	if len(report.Reasons) == 0 {
		cmd.Println("\nNo weaknesses detected. Your PIN appears to be secure.")
	} else {
		cmd.Println("\nWeakness reasons:")
		for _, reason := range report.Reasons {
			cmd.Printf("  %-28s %s\n", reason, reason.Describe())
		}
	}

	cmd.Println("\nRecommendations:")
	if report.Strength == mpin.StrengthWeak {
		cmd.Println("  - Choose a PIN that is not based on personal dates")
		cmd.Println("  - Avoid sequential or repetitive patterns")
		cmd.Println("  - Consider using a randomized PIN")
	} else {
		cmd.Println("  - Change your PIN periodically")
		cmd.Println("  - Never share your PIN with others")
	}
	cmd.Println()
	cmd.Println(line)
}
