package shared

import (
	"github.com/google/uuid"
)

// BaseAggregateRoot provides common fields for aggregate roots
type BaseAggregateRoot struct {
	BaseEntity
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// GetVersion returns the aggregate version for optimistic locking
func (a *BaseAggregateRoot) GetVersion() int {
	return a.Version
}

// IncrementVersion increments the version number
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// AddDomainEvent adds a domain event to be published
func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns all pending domain events
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

// ClearDomainEvents clears the pending domain events
func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// NewBaseAggregateRoot creates a new base aggregate root
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity:   NewBaseEntity(),
		Version:      1,
		domainEvents: make([]DomainEvent, 0),
	}
}

// MerchantAggregateRoot extends BaseAggregateRoot with merchant scoping.
// Every quote and mapping record belongs to exactly one merchant account.
type MerchantAggregateRoot struct {
	BaseAggregateRoot
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewMerchantAggregateRoot creates a new merchant-scoped aggregate root
func NewMerchantAggregateRoot(merchantID uuid.UUID) MerchantAggregateRoot {
	return MerchantAggregateRoot{
		BaseAggregateRoot: NewBaseAggregateRoot(),
		MerchantID:        merchantID,
	}
}
