package statuses

import "projectboard/internal/domain/models"

// Definition describes how one workflow stage is presented
type Definition struct {
	Value models.Status `yaml:"value" json:"value"`
	Label string        `yaml:"label" json:"label"`
	Color string        `yaml:"color" json:"color"`
}

// catalogFile is the layout of statuses.yaml
type catalogFile struct {
	Statuses []Definition `yaml:"statuses"`
}
