// Package shell implements the interactive menu session of the tracker.
//
// A session is a REPL over an io.Reader and io.Writer: a login-or-register
// dialog, then a numbered menu loop over the single active account. All
// input validation lives here, at the boundary; the tracker package only
// ever sees well-formed values.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/renderer"
)

// Session is one interactive run of the tracker. There is no logout: after
// a successful login or registration the account stays active until the
// session terminates.
type Session struct {
	w            io.Writer
	in           io.Reader
	r            *bufio.Reader
	registry     *tracker.Registry
	registryPath string
	dataDir      string

	account *tracker.Account

	// Now stamps new expenses; replaceable in tests.
	Now func() tracker.Timestamp
	// ReadPassword, when set, reads a password without echoing it. When nil
	// (or on reader types it cannot serve) passwords fall back to plain line
	// input.
	ReadPassword func(r io.Reader) (string, bool)
}

// New creates a session reading from r and writing to w. The registry is
// persisted to registryPath on registration and on clean exit; reports are
// written under dataDir.
func New(w io.Writer, r io.Reader, registry *tracker.Registry, registryPath, dataDir string) *Session {
	return &Session{
		w:            w,
		in:           r,
		r:            bufio.NewReader(r),
		registry:     registry,
		registryPath: registryPath,
		dataDir:      dataDir,
		Now:          tracker.Now,
	}
}

// Run starts the interactive session. It returns an error when login or
// registration fails; per the tracker's behavior these are not retried, the
// process ends instead.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.w, "Welcome to the Expense Tracker!")

	if err := s.loginOrRegister(); err != nil {
		return err
	}
	fmt.Fprintf(s.w, "Hello, %s!\n", s.account.Name())

	for ctx.Err() == nil {
		s.printMenu()

		line, err := s.readLine("")
		if err != nil {
			// Treat end of input like an explicit exit.
			return s.exit()
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.w, "Invalid choice. Please try again.")
			if err := s.pause(); err != nil {
				return s.exit()
			}
			continue
		}

		switch choice {
		case 1, 2, 3:
			err = s.addExpense(tracker.Categories()[choice-1])
		case 4:
			fmt.Fprintln(s.w, renderer.BalancesMarkdown(s.account))
		case 5:
			fmt.Fprintln(s.w, renderer.ExpensesMarkdown(s.account))
		case 6:
			s.saveReport()
		case 7:
			err = s.deposit()
		case 8:
			err = s.withdraw()
		case 9:
			return s.exit()
		default:
			fmt.Fprintln(s.w, "Invalid choice. Please try again.")
		}
		if err != nil {
			return s.exit()
		}

		if err := s.pause(); err != nil {
			return s.exit()
		}
	}
	return ctx.Err()
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.w, "+--------------------------------------------------------+")
	fmt.Fprintln(s.w, "--------------Welcome to Your Expense Tracker!------------")
	fmt.Fprintln(s.w, "+--------------------------------------------------------+")
	fmt.Fprintln(s.w, "Here are the options to manage your expenses:")
	fmt.Fprintln(s.w, "1. Enter Personal Expenses")
	fmt.Fprintln(s.w, "2. Enter Other Expenses")
	fmt.Fprintln(s.w, "3. Enter Bill Payments")
	fmt.Fprintln(s.w, "4. Check Remaining Money or Savings")
	fmt.Fprintln(s.w, "5. See Details of My Expenses")
	fmt.Fprintln(s.w, "6. Save Data")
	fmt.Fprintln(s.w, "7. Add money to savings vault")
	fmt.Fprintln(s.w, "8. Withdraw money from savings vault")
	fmt.Fprintln(s.w, "9. Exit")
	fmt.Fprintln(s.w, "Please enter the number corresponding to your choice:")
}

// loginOrRegister runs the opening dialog and sets the active account.
func (s *Session) loginOrRegister() error {
	response, err := s.readLine("Do you have an account? (yes/no): ")
	if err != nil {
		return err
	}

	switch strings.ToLower(response) {
	case "yes":
		username, err := s.readLine("Enter your username: ")
		if err != nil {
			return err
		}
		password, err := s.promptPassword("Enter your password: ")
		if err != nil {
			return err
		}
		account, err := s.registry.Authenticate(username, password)
		if err != nil {
			return err
		}
		s.account = account
		return nil

	case "no":
		username, err := s.readLine("Enter a username: ")
		if err != nil {
			return err
		}
		// Fail before prompting for the rest, so a taken username does not
		// cost the user the whole dialog.
		if s.registry.Find(username) != nil {
			return fmt.Errorf("cannot register %q: %w", username, tracker.ErrDuplicateUsername)
		}
		name, err := s.readLine("Enter your name: ")
		if err != nil {
			return err
		}
		var password string
		for password == "" {
			password, err = s.promptPassword("Enter a password: ")
			if err != nil {
				return err
			}
		}
		income, err := s.promptAmount("Enter your initial weekly income: $")
		if err != nil {
			return err
		}
		savings, err := s.promptAmount("Enter initial amount for savings vault: $")
		if err != nil {
			return err
		}

		account, err := s.registry.Register(name, username, password, income, savings)
		if err != nil {
			return err
		}
		if err := tracker.SaveRegistry(s.registryPath, s.registry); err != nil {
			return err
		}
		s.account = account
		return nil

	default:
		return fmt.Errorf("invalid response %q: please enter 'yes' or 'no'", response)
	}
}

func (s *Session) addExpense(category tracker.Category) error {
	title, err := s.readLine("Enter title of expense: ")
	if err != nil {
		return err
	}
	amount, err := s.promptAmount("Enter expense amount: $")
	if err != nil {
		return err
	}
	s.account.AddExpense(title, category, amount, s.Now())
	fmt.Fprintln(s.w, "Expense added successfully.")
	return nil
}

func (s *Session) saveReport() {
	path, err := tracker.SaveReport(s.dataDir, s.account)
	if err != nil {
		// A report failure is reported and the session continues.
		fmt.Fprintf(s.w, "Error saving data: %v\n", err)
		return
	}
	fmt.Fprintf(s.w, "Data saved successfully to %s.\n", path)
}

func (s *Session) deposit() error {
	ok, err := s.reauthenticate()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.w, "Authentication failed. Incorrect password.")
		return nil
	}
	amount, err := s.promptAmount("Enter the amount to add to the savings vault: $")
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		fmt.Fprintln(s.w, "Invalid amount. Please enter a positive number.")
		return nil
	}
	s.account.Deposit(amount)
	fmt.Fprintln(s.w, "Amount added to savings vault successfully.")
	return nil
}

func (s *Session) withdraw() error {
	ok, err := s.reauthenticate()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(s.w, "Authentication failed. Incorrect password.")
		return nil
	}
	amount, err := s.promptAmount("Enter the amount to withdraw from the savings vault: $")
	if err != nil {
		return err
	}
	if err := s.account.Withdraw(amount); err != nil {
		if errors.Is(err, tracker.ErrInsufficientFunds) {
			fmt.Fprintln(s.w, "Invalid amount or insufficient funds.")
			return nil
		}
		return err
	}
	fmt.Fprintln(s.w, "Amount withdrawn from savings vault successfully.")
	return nil
}

// reauthenticate asks for the active account's password again before a vault
// operation.
func (s *Session) reauthenticate() (bool, error) {
	password, err := s.promptPassword("Enter your password: ")
	if err != nil {
		return false, err
	}
	return password == s.account.Password(), nil
}

// exit persists the registry, so vault balances survive the session, and
// says goodbye.
func (s *Session) exit() error {
	if err := tracker.SaveRegistry(s.registryPath, s.registry); err != nil {
		fmt.Fprintf(s.w, "Error saving users: %v\n", err)
	}
	fmt.Fprintln(s.w, "Thank you for using Expense Tracker. Goodbye!")
	return nil
}

func (s *Session) pause() error {
	_, err := s.readLine("Press Enter to continue...")
	return err
}

// readLine prints the prompt and reads one trimmed line of input.
func (s *Session) readLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(s.w, prompt)
	}
	line, err := s.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptAmount keeps asking until the user enters a valid non-negative
// amount. Bad input is always recovered locally by re-prompting.
func (s *Session) promptAmount(prompt string) (tracker.Money, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return tracker.M(0), err
		}
		if line == "" {
			fmt.Fprintln(s.w, "Amount cannot be empty.")
			continue
		}
		amount, err := tracker.ParseMoney(line)
		if err != nil {
			fmt.Fprintln(s.w, "Invalid input. Please enter a valid amount.")
			continue
		}
		if amount.IsNegative() {
			fmt.Fprintln(s.w, "Amount cannot be negative.")
			continue
		}
		return amount, nil
	}
}

// promptPassword reads a password, masked when a ReadPassword implementation
// is available, in plain text otherwise.
func (s *Session) promptPassword(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)
	if s.ReadPassword != nil {
		if password, ok := s.ReadPassword(s.in); ok {
			fmt.Fprintln(s.w)
			return password, nil
		}
	}
	line, err := s.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
