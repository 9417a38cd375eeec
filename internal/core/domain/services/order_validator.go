package services

import (
	"math"
	"time"

	"orderintake/internal/core/domain/model/order"
	"orderintake/internal/pkg/errs"
)

// PriceTolerance is the accepted difference between an item's declared total
// and unitPrice multiplied by quantity, covering currency rounding.
const PriceTolerance = 0.01

// OrderDraft is the plain request view the validation rules run against.
// It is built from the create-order command before any zone lookup or write.
type OrderDraft struct {
	DeliveryType order.DeliveryType
	Address      *order.Address
	Email        string
	Phone        string
	Items        []DraftItem
}

// DraftItem carries the raw line values prior to Item construction so the
// integrity rule can report the offending position with both totals.
type DraftItem struct {
	Name       string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// ValidationRule is one step of the fail-fast chain. Each rule returns a
// BusinessRuleError with a user-facing reason, or nil.
type ValidationRule func(draft OrderDraft) error

// OrderValidator runs an explicit, ordered list of validation rules against
// an order draft and stops at the first failure. Rule order is part of the
// contract: business hours, item integrity, address completeness, contact
// presence.
type OrderValidator struct {
	rules []ValidationRule
}

// OrderValidatorOption customizes validator construction.
type OrderValidatorOption func(*validatorConfig)

type validatorConfig struct {
	skipBusinessHours bool
	clock             func() time.Time
}

// WithBusinessHoursSkipped disables the business-hours rule. Intended for
// automated testing only; the remaining rules still run.
func WithBusinessHoursSkipped() OrderValidatorOption {
	return func(c *validatorConfig) {
		c.skipBusinessHours = true
	}
}

// WithClock replaces the time source used by the business-hours rule.
func WithClock(clock func() time.Time) OrderValidatorOption {
	return func(c *validatorConfig) {
		c.clock = clock
	}
}

// NewOrderValidator builds the rule chain for the given business hours.
func NewOrderValidator(hours BusinessHours, opts ...OrderValidatorOption) OrderValidator {
	cfg := validatorConfig{clock: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	rules := make([]ValidationRule, 0, 4)
	if !cfg.skipBusinessHours {
		rules = append(rules, businessHoursRule(hours, cfg.clock))
	}
	rules = append(rules,
		itemIntegrityRule,
		addressCompletenessRule,
		contactPresenceRule,
	)

	return OrderValidator{rules: rules}
}

// Validate runs the rule chain, aborting on the first failing rule.
func (v OrderValidator) Validate(draft OrderDraft) error {
	for _, rule := range v.rules {
		if err := rule(draft); err != nil {
			return err
		}
	}
	return nil
}

func businessHoursRule(hours BusinessHours, clock func() time.Time) ValidationRule {
	return func(OrderDraft) error {
		return hours.Evaluate(clock())
	}
}

func itemIntegrityRule(draft OrderDraft) error {
	if len(draft.Items) == 0 {
		return errs.NewBusinessRuleError("the cart cannot be empty")
	}

	for i, item := range draft.Items {
		expected := item.UnitPrice * float64(item.Quantity)
		if math.Abs(expected-item.TotalPrice) > PriceTolerance {
			return errs.NewBusinessRuleError(
				"item %d total does not match the calculated amount (expected: %.2f, received: %.2f)",
				i+1, expected, item.TotalPrice)
		}
	}

	return nil
}

func addressCompletenessRule(draft OrderDraft) error {
	if draft.DeliveryType != order.Delivery {
		return nil
	}

	if draft.Address == nil {
		return errs.NewBusinessRuleError("an address is required for delivery orders")
	}
	if !draft.Address.IsComplete() {
		return errs.NewBusinessRuleError("the address must include at least street and city")
	}

	return nil
}

func contactPresenceRule(draft OrderDraft) error {
	if draft.Email == "" && draft.Phone == "" {
		return errs.NewBusinessRuleError("at least one contact email or phone number is required")
	}
	return nil
}
