package main

import (
	"projectboard/internal/domain/models"
	"projectboard/internal/domain/services"
)

// getSeedProjects returns one demo project per workflow stage plus a few extras
func getSeedProjects() []*services.CreateProjectRequest {
	return []*services.CreateProjectRequest{
		{
			ClientName:  "Acme Bakery",
			Description: "Landing page and online ordering for three storefronts.",
			Status:      models.StatusPaymentConfirmed,
		},
		{
			ClientName:  "Northwind Traders",
			Description: "Catalog site migration from the legacy CMS.",
			Status:      models.StatusOnboarding,
		},
		{
			ClientName:  "Blue Harbor Dental",
			Description: "Service pages and appointment booking copy.",
			Status:      models.StatusCopy,
		},
		{
			ClientName:  "Greenleaf Studio",
			Description: "Portfolio redesign with a new visual identity.",
			Status:      models.StatusDesign,
		},
		{
			ClientName:  "Atlas Logistics",
			Description: "Shipment tracking dashboard for business customers.",
			Status:      models.StatusDevelopment,
		},
		{
			ClientName:  "Maple & Co",
			Description: "Brochure site, delivered and handed over.",
			Status:      models.StatusCompleted,
		},
		{
			ClientName:  "acme logistics",
			Description: "Intranet refresh for the warehouse team.",
			Status:      models.StatusDesign,
		},
		{
			ClientName: "Riverside Gym",
			Status:     models.StatusOnboarding,
		},
	}
}
