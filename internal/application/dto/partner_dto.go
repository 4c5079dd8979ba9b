package dto

// FirmPartnerInput one co-partner of the firm, with image uploads resolved
// to local paths by the handler.
type FirmPartnerInput struct {
	PANNumber            string   `json:"panNumber"`
	AadharNumber         string   `json:"aadharNumber"`
	BankName             string   `json:"bankName"`
	AccountNumber        string   `json:"accountNumber"`
	IFSCCode             string   `json:"ifscCode"`
	AccountHolderName    string   `json:"accountHolderName"`
	Documents            []string `json:"document"`
	PANImagePath         string   `json:"-"`
	AadharFrontImagePath string   `json:"-"`
	AadharBackImagePath  string   `json:"-"`
}

// CreatePartnerRequest full partner onboarding payload: credentials plus the
// GST, firm, KYC and bank blocks.
type CreatePartnerRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	Phone          string `json:"phone" form:"phone"`
	SecondaryPhone string `json:"secondaryPhone" form:"secondaryPhone"`

	GSTSelected      string `json:"gstSelected" form:"gstSelected"` // "Yes" | "No"
	GSTNumber        string `json:"gstNumber" form:"gstNumber"`
	GSTType          string `json:"gstType" form:"gstType"`
	CompositionType  string `json:"compositionType" form:"compositionType"`
	CessType         string `json:"cessType" form:"cessType"`
	GoodsServiceType string `json:"goodsServiceType" form:"goodsServiceType"`
	Percentage       string `json:"percentage" form:"percentage"`
	CINNumber        string `json:"cinNumber" form:"cinNumber"`

	FirmName    string `json:"firmName" form:"firmName"`
	FirmAddress string `json:"firmAddress" form:"firmAddress"`
	FirmType    string `json:"firmType" form:"firmType"`

	PANNumber    string `json:"panNumber" form:"panNumber"`
	AadharNumber string `json:"aadharNumber" form:"aadharNumber"`

	BankName          string `json:"bankName" form:"bankName"`
	AccountNumber     string `json:"accountNumber" form:"accountNumber"`
	IFSCCode          string `json:"ifscCode" form:"ifscCode"`
	AccountHolderName string `json:"accountHolderName" form:"accountHolderName"`

	Partners []FirmPartnerInput `json:"partners" form:"-"`

	AvatarPath           string `json:"-" form:"-"`
	PANImagePath         string `json:"-" form:"-"`
	AadharFrontImagePath string `json:"-" form:"-"`
	AadharBackImagePath  string `json:"-" form:"-"`
}

// UpdatePartnerBasicRequest name/contact/status slice of the partner row.
type UpdatePartnerBasicRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondaryPhone"`
	Status         string `json:"status"`
}

// UpdatePartnerGSTRequest GST block update.
type UpdatePartnerGSTRequest struct {
	GST              string `json:"gst"`
	GSTNumber        string `json:"gstNumber"`
	GSTType          string `json:"gstType"`
	CompositionType  string `json:"compositionType"`
	CessType         string `json:"cessType"`
	GoodsServiceType string `json:"goodsServiceType"`
	Percentage       string `json:"percentage"`
}

// UpdatePartnerFirmRequest firm/KYC block update; image paths resolved by
// the handler when new files were uploaded.
type UpdatePartnerFirmRequest struct {
	PANNumber            string `json:"panNumber"`
	AadharNumber         string `json:"aadharNumber"`
	FirmName             string `json:"firmName"`
	FirmAddress          string `json:"firmAddress"`
	FirmType             string `json:"firmType"`
	CINNumber            string `json:"cinNumber"`
	PANImagePath         string `json:"-"`
	AadharFrontImagePath string `json:"-"`
	AadharBackImagePath  string `json:"-"`
}

// UpdatePartnerBankRequest bank block update.
type UpdatePartnerBankRequest struct {
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IFSCCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
}

// UpdatePartnerPartnersRequest replaces the firm's co-partner array.
type UpdatePartnerPartnersRequest struct {
	Partners []FirmPartnerInput `json:"partners"`
}

// PartnerResponse full partner projection (still sanitized: no password
// hash, no refresh token).
type PartnerResponse struct {
	AdminResponse

	GST              string `json:"gst,omitempty"`
	GSTNumber        string `json:"gstNumber,omitempty"`
	GSTType          string `json:"gstType,omitempty"`
	CompositionType  string `json:"compositionType,omitempty"`
	CessType         string `json:"cessType,omitempty"`
	GoodsServiceType string `json:"goodsServiceType,omitempty"`
	Percentage       string `json:"percentage,omitempty"`
	CINNumber        string `json:"cinNumber,omitempty"`

	FirmName    string `json:"firmName,omitempty"`
	FirmAddress string `json:"firmAddress,omitempty"`
	FirmType    string `json:"firmType,omitempty"`

	AadharFrontImage string `json:"aadharFrontImage,omitempty"`
	AadharBackImage  string `json:"aadharBackImage,omitempty"`

	BankName          string `json:"bankName,omitempty"`
	AccountNumber     string `json:"accountNumber,omitempty"`
	IFSCCode          string `json:"ifscCode,omitempty"`
	AccountHolderName string `json:"accountHolderName,omitempty"`

	Partners []FirmPartnerResponse `json:"partners,omitempty"`
}

// FirmPartnerResponse co-partner projection with uploaded image URLs.
type FirmPartnerResponse struct {
	PANNumber         string   `json:"panNumber"`
	PANImage          string   `json:"panImage,omitempty"`
	AadharNumber      string   `json:"aadharNumber"`
	AadharFrontImage  string   `json:"aadharFrontImage,omitempty"`
	AadharBackImage   string   `json:"aadharBackImage,omitempty"`
	Documents         []string `json:"document,omitempty"`
	BankName          string   `json:"bankName,omitempty"`
	AccountNumber     string   `json:"accountNumber,omitempty"`
	IFSCCode          string   `json:"ifscCode,omitempty"`
	AccountHolderName string   `json:"accountHolderName,omitempty"`
}

// PartnerListResponse paged partner list.
type PartnerListResponse struct {
	Items []PartnerResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
