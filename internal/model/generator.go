package model

// UUIDRequest represents a UUID generation request.
type UUIDRequest struct {
	Count     *int `json:"count"`
	Uppercase bool `json:"uppercase"`
	NoDashes  bool `json:"noDashes"`
}

type UUIDResponse struct {
	UUIDs []string `json:"uuids"`
}

// PasswordRequest represents a password generation request.
// Pointer fields distinguish between missing (nil -> default) and explicit values.
type PasswordRequest struct {
	Length           *int  `json:"length"`
	IncludeUppercase *bool `json:"includeUppercase"`
	IncludeLowercase *bool `json:"includeLowercase"`
	IncludeNumbers   *bool `json:"includeNumbers"`
	IncludeSymbols   *bool `json:"includeSymbols"`
	ExcludeAmbiguous bool  `json:"excludeAmbiguous"`
}

type PasswordResponse struct {
	Password string `json:"password"`
	Strength int    `json:"strength"`
}

type LoremRequest struct {
	Type           string `json:"type"`
	Count          *int   `json:"count"`
	StartWithLorem *bool  `json:"startWithLorem"`
}

type LoremResponse struct {
	Text      string `json:"text"`
	WordCount int    `json:"wordCount"`
	CharCount int    `json:"charCount"`
}

type QRCodeRequest struct {
	Content    string `json:"content"`
	Size       *int   `json:"size"`
	DarkColor  string `json:"darkColor"`
	LightColor string `json:"lightColor"`
	ErrorLevel string `json:"errorLevel"`
}

type QRCodeResponse struct {
	DataURL    string `json:"dataUrl"`
	SVGContent string `json:"svgContent"`
}
