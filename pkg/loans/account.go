package loans

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/loan-organizer/pkg/constants"
	"github.com/iwvelando/loan-organizer/pkg/datetime"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxAnnualInterestRate = decimal.RequireFromString(constants.MaxAnnualInterestRate)

// Defaults supplies the values used when a caller leaves the interest rate or
// term unset. It is passed explicitly at construction time.
type Defaults struct {
	InterestRate decimal.Decimal
	TermInMonths int
}

// StandardDefaults returns a 5% annual rate over 60 months.
func StandardDefaults() Defaults {
	return Defaults{
		InterestRate: decimal.RequireFromString("0.05"),
		TermInMonths: 60,
	}
}

// Terms are the inputs needed to open a loan account. An invalid
// AnnualInterestRate or zero TermInMonths take the configured Defaults; a zero
// StartDate means today.
type Terms struct {
	Name               string
	Type               Type
	Principal          decimal.Decimal
	AnnualInterestRate decimal.NullDecimal
	TermInMonths       int
	StartDate          time.Time
}

type options struct {
	logger   *zap.Logger
	defaults Defaults
	clock    func() time.Time
}

// Option customises account construction.
type Option func(*options)

// WithLogger attaches a logger to the account. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDefaults overrides the standard defaults for rate and term.
func WithDefaults(d Defaults) Option {
	return func(o *options) {
		o.defaults = d
	}
}

// WithClock overrides the clock used to default the start date.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Account is a single fixed-rate loan. It is safe for concurrent use:
// mutators hold the write lock and calculations work from a snapshot.
type Account struct {
	mu sync.RWMutex

	id                 uuid.UUID
	name               string
	loanType           Type
	principal          decimal.Decimal
	annualInterestRate decimal.Decimal
	termInMonths       int
	startDate          time.Time
	maturityDate       time.Time
	paymentHistory     []Payment
	active             bool
	variant            Variant

	logger *zap.Logger
}

// snapshot is a consistent copy of the fields calculations depend on.
type snapshot struct {
	name         string
	loanType     Type
	principal    decimal.Decimal
	rate         decimal.Decimal
	termInMonths int
	startDate    time.Time
	maturityDate time.Time
	variant      Variant
}

// NewAccount opens a personal or general loan account.
func NewAccount(terms Terms, opts ...Option) (*Account, error) {
	return newAccount(terms, PersonalDetails{}, opts...)
}

func newAccount(terms Terms, variant Variant, opts ...Option) (*Account, error) {
	o := options{
		logger:   zap.NewNop(),
		defaults: StandardDefaults(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	loanType := terms.Type
	if loanType == "" {
		loanType = defaultType(variant)
	}
	rate := o.defaults.InterestRate
	if terms.AnnualInterestRate.Valid {
		rate = terms.AnnualInterestRate.Decimal
	}
	term := terms.TermInMonths
	if term == 0 {
		term = o.defaults.TermInMonths
	}
	start := terms.StartDate
	if start.IsZero() {
		start = datetime.Date(o.clock().UTC())
	}

	if err := validateName(terms.Name); err != nil {
		return nil, err
	}
	if !loanType.Valid() || !typeAllowed(variant, loanType) {
		return nil, wrapInvalidType(loanType)
	}
	if err := validatePrincipal(terms.Principal); err != nil {
		return nil, err
	}
	if err := validateInterestRate(rate); err != nil {
		return nil, err
	}
	if err := validateTerm(term); err != nil {
		return nil, err
	}

	a := &Account{
		id:                 uuid.New(),
		name:               terms.Name,
		loanType:           loanType,
		principal:          terms.Principal,
		annualInterestRate: rate,
		termInMonths:       term,
		startDate:          start,
		maturityDate:       datetime.AddMonths(start, term),
		active:             true,
		variant:            variant,
		logger:             o.logger,
	}

	a.logger.Debug("opened loan account",
		zap.String("op", "loans.NewAccount"),
		zap.String("id", a.id.String()),
		zap.String("name", a.name),
		zap.String("type", string(a.loanType)),
		zap.String("principal", a.principal.StringFixed(2)),
		zap.String("rate", a.annualInterestRate.String()),
		zap.Int("termInMonths", a.termInMonths),
	)
	return a, nil
}

func defaultType(v Variant) Type {
	switch v.(type) {
	case AutoDetails:
		return TypeAuto
	case MortgageDetails:
		return TypeMortgage
	default:
		return TypeGeneral
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return wrapInvalidName()
	}
	return nil
}

func validatePrincipal(principal decimal.Decimal) error {
	if !principal.IsPositive() {
		return wrapInvalidPrincipal(principal)
	}
	return nil
}

func validateInterestRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxAnnualInterestRate) {
		return wrapInvalidInterestRate(rate)
	}
	return nil
}

func validateTerm(term int) error {
	if term < constants.MinTermMonths || term > constants.MaxTermMonths {
		return wrapInvalidTerm(term)
	}
	return nil
}

func (a *Account) snapshot() snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return snapshot{
		name:         a.name,
		loanType:     a.loanType,
		principal:    a.principal,
		rate:         a.annualInterestRate,
		termInMonths: a.termInMonths,
		startDate:    a.startDate,
		maturityDate: a.maturityDate,
		variant:      a.variant,
	}
}

// ID returns the identifier assigned when the account was opened.
func (a *Account) ID() uuid.UUID {
	return a.id
}

// Name returns the display name of the loan.
func (a *Account) Name() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.name
}

// Type returns the loan classification.
func (a *Account) Type() Type {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loanType
}

// Principal returns the amount originally borrowed.
func (a *Account) Principal() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.principal
}

// AnnualInterestRate returns the yearly rate as a fraction (0.05 is 5%).
func (a *Account) AnnualInterestRate() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.annualInterestRate
}

// TermInMonths returns the number of scheduled monthly payments.
func (a *Account) TermInMonths() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.termInMonths
}

// StartDate returns the date the loan was opened.
func (a *Account) StartDate() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.startDate
}

// MaturityDate is always StartDate plus TermInMonths calendar months.
func (a *Account) MaturityDate() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.maturityDate
}

// PaymentHistory returns a copy of the recorded payments in insertion order.
func (a *Account) PaymentHistory() []Payment {
	a.mu.RLock()
	defer a.mu.RUnlock()
	history := make([]Payment, len(a.paymentHistory))
	copy(history, a.paymentHistory)
	return history
}

// IsActive reports whether the loan counts toward report totals.
func (a *Account) IsActive() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.active
}

// Variant returns the type-specific details of the loan.
func (a *Account) Variant() Variant {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.variant
}

// Auto returns the vehicle details when the account is an auto loan.
func (a *Account) Auto() (AutoDetails, bool) {
	d, ok := a.Variant().(AutoDetails)
	return d, ok
}

// Mortgage returns the property details when the account is a mortgage.
func (a *Account) Mortgage() (MortgageDetails, bool) {
	d, ok := a.Variant().(MortgageDetails)
	return d, ok
}

// SetName renames the loan. Blank names are rejected.
func (a *Account) SetName(name string) error {
	if err := validateName(name); err != nil {
		a.logRejected("loans.SetName", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.name = name
	return nil
}

// SetType reclassifies the loan. Auto loans and mortgages are fixed by their
// collateral; unsecured loans may switch between Personal and General.
func (a *Account) SetType(t Type) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !t.Valid() || !typeAllowed(a.variant, t) {
		err := wrapInvalidType(t)
		a.logRejected("loans.SetType", err)
		return err
	}
	a.loanType = t
	return nil
}

// SetPrincipal changes the amount borrowed. It must be positive.
func (a *Account) SetPrincipal(principal decimal.Decimal) error {
	if err := validatePrincipal(principal); err != nil {
		a.logRejected("loans.SetPrincipal", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.principal = principal
	return nil
}

// SetAnnualInterestRate changes the yearly rate. It must lie between 0 and 1.
func (a *Account) SetAnnualInterestRate(rate decimal.Decimal) error {
	if err := validateInterestRate(rate); err != nil {
		a.logRejected("loans.SetAnnualInterestRate", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.annualInterestRate = rate
	return nil
}

// SetTermInMonths changes the term and moves the maturity date with it.
func (a *Account) SetTermInMonths(term int) error {
	if err := validateTerm(term); err != nil {
		a.logRejected("loans.SetTermInMonths", err)
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.termInMonths = term
	a.maturityDate = datetime.AddMonths(a.startDate, term)
	return nil
}

// SetStartDate changes the start date and moves the maturity date with it.
func (a *Account) SetStartDate(start time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.startDate = start
	a.maturityDate = datetime.AddMonths(start, a.termInMonths)
}

// SetActive includes or excludes the loan from report totals.
func (a *Account) SetActive(active bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = active
}

func (a *Account) logRejected(op string, err error) {
	a.logger.Warn("rejected loan update",
		zap.String("op", op),
		zap.String("id", a.id.String()),
		zap.Error(err),
	)
}
