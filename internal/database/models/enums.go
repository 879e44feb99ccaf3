package models

// HarvestStatus is the lifecycle state of a harvest schedule.
// Only active schedules participate in conflict detection and aggregation.
type HarvestStatus string

const (
	HarvestStatusActive    HarvestStatus = "active"
	HarvestStatusCompleted HarvestStatus = "completed"
	HarvestStatusCancelled HarvestStatus = "cancelled"
)

// IsValid checks if the HarvestStatus is valid
func (s HarvestStatus) IsValid() bool {
	switch s {
	case HarvestStatusActive, HarvestStatusCompleted, HarvestStatusCancelled:
		return true
	}
	return false
}

// BusinessType defines the kinds of agribusiness outlets
type BusinessType string

const (
	BusinessTypeShop            BusinessType = "Shop"
	BusinessTypeStall           BusinessType = "Stall"
	BusinessTypeOutlet          BusinessType = "Outlet"
	BusinessTypeProcessingPlant BusinessType = "Processing Plant"
)

// IsValid checks if the BusinessType is valid
func (b BusinessType) IsValid() bool {
	switch b {
	case BusinessTypeShop, BusinessTypeStall, BusinessTypeOutlet, BusinessTypeProcessingPlant:
		return true
	}
	return false
}

// CertificationType defines the certification schemes tracked for members
type CertificationType string

const (
	CertificationTypeMyGAP     CertificationType = "MyGAP"
	CertificationTypeOrganic   CertificationType = "Organic"
	CertificationTypeHACCP     CertificationType = "HACCP"
	CertificationTypeHalal     CertificationType = "Halal"
	CertificationTypeISO22000  CertificationType = "ISO 22000"
	CertificationTypeGlobalGAP CertificationType = "GlobalGAP"
)

// IsValid checks if the CertificationType is valid
func (c CertificationType) IsValid() bool {
	switch c {
	case CertificationTypeMyGAP, CertificationTypeOrganic, CertificationTypeHACCP,
		CertificationTypeHalal, CertificationTypeISO22000, CertificationTypeGlobalGAP:
		return true
	}
	return false
}
