package domain

import "time"

type ProductRisk string

const (
	RiskLow      ProductRisk = "LOW"
	RiskMedium   ProductRisk = "MEDIUM"
	RiskHigh     ProductRisk = "HIGH"
	RiskVeryHigh ProductRisk = "VERY_HIGH"
	RiskExtreme  ProductRisk = "EXTREME"
)

type ProductStatus string

const (
	ProductActive       ProductStatus = "ACTIVE"
	ProductInactive     ProductStatus = "INACTIVE"
	ProductComingSoon   ProductStatus = "COMING_SOON"
	ProductDiscontinued ProductStatus = "DISCONTINUED"
)

type ProductCategory string

const (
	CategoryDefi ProductCategory = "DEFI"
	CategoryRwa  ProductCategory = "RWA"
	CategoryNft  ProductCategory = "NFT"
)

// Product is a yield product shown on the marketing site and managed in the
// admin back office. Features holds comma-separated display tokens.
type Product struct {
	ID            int64           `json:"id,string" form:"id"`
	Name          string          `gorm:"index" json:"name" form:"name"`
	Apy           float64         `json:"apy" form:"apy"`
	Risk          ProductRisk     `gorm:"size:32" json:"risk" form:"risk"`
	MinInvestment float64         `json:"min_investment" form:"min_investment"`
	MaxInvestment float64         `json:"max_investment" form:"max_investment"`
	Investors     int64           `json:"investors" form:"investors"`
	Status        ProductStatus   `gorm:"size:32;index" json:"status" form:"status"`
	Category      ProductCategory `gorm:"size:32" json:"category" form:"category"`
	Features      string          `json:"features" form:"features"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

var productRiskLabels = map[ProductRisk]string{
	RiskLow:      "Low",
	RiskMedium:   "Medium",
	RiskHigh:     "High",
	RiskVeryHigh: "Very High",
	RiskExtreme:  "Extreme",
}

var productStatusLabels = map[ProductStatus]string{
	ProductActive:       "Active",
	ProductInactive:     "Inactive",
	ProductComingSoon:   "Coming Soon",
	ProductDiscontinued: "Discontinued",
}

var productCategoryLabels = map[ProductCategory]string{
	CategoryDefi: "DeFi",
	CategoryRwa:  "Real World Assets",
	CategoryNft:  "NFT",
}

func (r ProductRisk) Valid() bool {
	_, ok := productRiskLabels[r]
	return ok
}

// Label returns the display text for the risk level, "Unknown" for
// unrecognized values.
func (r ProductRisk) Label() string {
	if label, ok := productRiskLabels[r]; ok {
		return label
	}
	return "Unknown"
}

func (s ProductStatus) Valid() bool {
	_, ok := productStatusLabels[s]
	return ok
}

func (s ProductStatus) Label() string {
	if label, ok := productStatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

func (c ProductCategory) Valid() bool {
	_, ok := productCategoryLabels[c]
	return ok
}

func (c ProductCategory) Label() string {
	if label, ok := productCategoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}
