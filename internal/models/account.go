package models

// AccountKind discriminates account variants
type AccountKind string

const (
	// AccountKindBase is a plain account whose balance never goes negative.
	AccountKindBase AccountKind = "BASE"

	// AccountKindChecking adds an overdraft limit and a daily withdrawal cap.
	AccountKindChecking AccountKind = "CHECKING"
)

// Defaults for checking accounts and the branch code.
const (
	DefaultBranch           = "0001"
	DefaultOverdraftLimit   = 500.0
	DefaultDailyWithdrawals = 3
)

// Account holds a balance and the transaction log for one client.
//
// The two variants share one struct: Kind selects the withdrawal policy and
// the checking-only fields (OverdraftLimit, RemainingDailyWithdrawals,
// DailyWithdrawalCap) are meaningful only when Kind is AccountKindChecking.
type Account struct {
	Owner                     *Client
	Log                       *TransactionLog
	Branch                    string
	Kind                      AccountKind
	Balance                   float64
	OverdraftLimit            float64
	Number                    int
	RemainingDailyWithdrawals int
	DailyWithdrawalCap        int
}

// NewAccount creates a base account for owner with the given number.
func NewAccount(number int, branch string, owner *Client) *Account {
	return &Account{
		Kind:   AccountKindBase,
		Number: number,
		Branch: branch,
		Owner:  owner,
		Log:    NewTransactionLog(),
	}
}

// NewCheckingAccount creates a checking account for owner with the given
// number, overdraft limit, and daily withdrawal cap.
func NewCheckingAccount(number int, branch string, owner *Client, overdraftLimit float64, dailyWithdrawals int) *Account {
	return &Account{
		Kind:                      AccountKindChecking,
		Number:                    number,
		Branch:                    branch,
		Owner:                     owner,
		Log:                       NewTransactionLog(),
		OverdraftLimit:            overdraftLimit,
		RemainingDailyWithdrawals: dailyWithdrawals,
		DailyWithdrawalCap:        dailyWithdrawals,
	}
}

// Deposit adds amount to the balance and records a positive transaction.
// Rejects non-positive amounts with no state change.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	a.Balance += amount
	a.Log.Append(NewTransaction(amount))
	return nil
}

// Withdraw removes amount from the balance and records a negative
// transaction. The funds floor depends on the account kind: zero for base
// accounts, -OverdraftLimit for checking accounts. Checking accounts also
// consume one daily withdrawal per success and reject everything once the
// counter reaches zero, regardless of funds. Failed withdrawals leave
// balance, counter, and log untouched.
func (a *Account) Withdraw(amount float64) error {
	if a.Kind == AccountKindChecking && a.RemainingDailyWithdrawals <= 0 {
		return ErrWithdrawalLimitReached
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	available := a.Balance
	if a.Kind == AccountKindChecking {
		available += a.OverdraftLimit
	}
	if amount > available {
		return ErrInsufficientFunds
	}

	a.Balance -= amount
	if a.Kind == AccountKindChecking {
		a.RemainingDailyWithdrawals--
	}
	a.Log.Append(NewTransaction(-amount))
	return nil
}

// Apply routes an operation request to the matching mutation.
func (a *Account) Apply(op Operation) error {
	switch op.Direction {
	case DirectionDeposit:
		return a.Deposit(op.Amount)
	case DirectionWithdrawal:
		return a.Withdraw(op.Amount)
	default:
		return ErrUnsupportedOperation
	}
}

// ResetDailyWithdrawals restores the withdrawal counter to its cap.
// When the reset happens is the caller's policy; no schedule is assumed.
func (a *Account) ResetDailyWithdrawals() {
	if a.Kind == AccountKindChecking {
		a.RemainingDailyWithdrawals = a.DailyWithdrawalCap
	}
}
