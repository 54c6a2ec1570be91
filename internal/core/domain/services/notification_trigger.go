package services

import (
	"parcels/internal/core/domain/model/delivery"
	"parcels/internal/core/domain/model/deliveryman"
	"parcels/internal/core/domain/model/problem"
	"parcels/internal/core/domain/model/recipient"
)

// Queue job names for the two delivery mails.
const (
	JobNewDeliveryMail      = "new_delivery_mail"
	JobDeliveryCanceledMail = "delivery_canceled_mail"
)

// NewDeliveryNotice is the template context for the mail sent to a deliveryman
// when a delivery is assigned to them.
type NewDeliveryNotice struct {
	DeliveryID       string `json:"delivery_id"`
	Deliveryman      string `json:"deliveryman"`
	DeliverymanEmail string `json:"deliveryman_email"`
	Product          string `json:"product"`
	Recipient        string `json:"recipient"`
	Address          string `json:"address"`
}

// DeliveryCanceledNotice is the template context for the mail sent to a
// deliveryman when one of their deliveries is canceled over a reported problem.
type DeliveryCanceledNotice struct {
	DeliveryID       string `json:"delivery_id"`
	Deliveryman      string `json:"deliveryman"`
	DeliverymanEmail string `json:"deliveryman_email"`
	Product          string `json:"product"`
	Recipient        string `json:"recipient"`
	Address          string `json:"address"`
	Problem          string `json:"problem"`
}

// NotificationTrigger assembles mail notices from the aggregates a command
// handler already loaded. It owns no state; handlers enqueue the notices it
// returns after their transaction commits.
type NotificationTrigger interface {
	NewDeliveryNotice(d *delivery.Delivery, dm *deliveryman.Deliveryman, r *recipient.Recipient) (NewDeliveryNotice, error)
	DeliveryCanceledNotice(d *delivery.Delivery, dm *deliveryman.Deliveryman,
		r *recipient.Recipient, p *problem.DeliveryProblem) (DeliveryCanceledNotice, error)
}

var _ NotificationTrigger = &notificationTrigger{}

type notificationTrigger struct{}

// NewNotificationTrigger creates the notice builder.
func NewNotificationTrigger() NotificationTrigger {
	return &notificationTrigger{}
}

func (s *notificationTrigger) NewDeliveryNotice(d *delivery.Delivery,
	dm *deliveryman.Deliveryman, r *recipient.Recipient) (NewDeliveryNotice, error) {
	if err := validateParticipants(d, dm, r); err != nil {
		return NewDeliveryNotice{}, err
	}

	return NewDeliveryNotice{
		DeliveryID:       d.ID().String(),
		Deliveryman:      dm.Name(),
		DeliverymanEmail: dm.Email().String(),
		Product:          d.Product(),
		Recipient:        r.Name(),
		Address:          r.Address().String(),
	}, nil
}

func (s *notificationTrigger) DeliveryCanceledNotice(d *delivery.Delivery,
	dm *deliveryman.Deliveryman, r *recipient.Recipient,
	p *problem.DeliveryProblem) (DeliveryCanceledNotice, error) {
	if err := validateParticipants(d, dm, r); err != nil {
		return DeliveryCanceledNotice{}, err
	}
	if err := p.Validate(); err != nil {
		return DeliveryCanceledNotice{}, err
	}

	return DeliveryCanceledNotice{
		DeliveryID:       d.ID().String(),
		Deliveryman:      dm.Name(),
		DeliverymanEmail: dm.Email().String(),
		Product:          d.Product(),
		Recipient:        r.Name(),
		Address:          r.Address().String(),
		Problem:          p.Description(),
	}, nil
}

func validateParticipants(d *delivery.Delivery, dm *deliveryman.Deliveryman, r *recipient.Recipient) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := dm.Validate(); err != nil {
		return err
	}
	return r.Validate()
}
