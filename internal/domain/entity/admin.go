package entity

import "time"

// Statuses shared by every entity that can be blocked by an operator.
const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

// Well-known role names. Roles themselves are rows in the roles table; these
// are the names the routing layer gates on.
const (
	RoleNameAdmin   = "Admin"
	RoleNamePartner = "Partner"
	RoleNameStore   = "Store"
)

// Valid firm types for a partner account.
const (
	FirmTypeProprietor  = "Propriter" // spelling kept for data compatibility
	FirmTypePartnership = "Partnership"
	FirmTypeLLP         = "LLP"
	FirmTypePvtLtd      = "PVT LTD"
	FirmTypeLimited     = "Limited"
)

// Admin is the principal account record. Admins, partners and store owners
// all authenticate through this table; the role distinguishes them. The GST,
// firm, KYC and bank blocks are only populated for partner accounts.
//
// PasswordHash is a bcrypt digest and is never exposed through the API;
// RefreshToken holds the single active refresh token (empty = logged out).
type Admin struct {
	ID             string
	Name           string
	Email          string // unique, stored lowercased
	Phone          string // unique, 10 digits
	SecondaryPhone string
	PasswordHash   string
	RoleID         string
	FCMToken       string
	Avatar         string
	Status         string // Active, Blocked
	RefreshToken   string

	// GST block
	GST              string // "Yes" | "No"
	GSTNumber        string
	GSTType          string
	CompositionType  string
	CessType         string
	GoodsServiceType string
	Percentage       string
	CINNumber        string

	// Firm block
	FirmName    string
	FirmAddress string
	FirmType    string

	// KYC block
	PANNumber        string
	PANImage         string
	AadharNumber     string
	AadharFrontImage string
	AadharBackImage  string

	// Bank block
	BankName          string
	AccountNumber     string
	IFSCCode          string
	AccountHolderName string

	// Partners holds the firm's co-partner sub-records, stored as a JSONB
	// document array. It is opaque to the core: no uniqueness or cascade
	// rules apply inside it.
	Partners []FirmPartner

	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Role is the joined role row when the query asked for it; nil otherwise.
	Role *Role
}

// FirmPartner is one co-partner of a partnership firm (KYC + bank details).
type FirmPartner struct {
	PANNumber         string   `json:"panNumber"`
	PANImage          string   `json:"panImage"`
	AadharNumber      string   `json:"aadharNumber"`
	AadharFrontImage  string   `json:"aadharFrontImage"`
	AadharBackImage   string   `json:"aadharBackImage"`
	Documents         []string `json:"document"`
	BankName          string   `json:"bankName"`
	AccountNumber     string   `json:"accountNumber"`
	IFSCCode          string   `json:"ifscCode"`
	AccountHolderName string   `json:"accountHolderName"`
}
