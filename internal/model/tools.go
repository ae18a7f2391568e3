package model

type EncodeDecodeRequest struct {
	Input     string  `json:"input"`
	Separator *string `json:"separator"`
}

type EncodeDecodeResponse struct {
	Output  string `json:"output"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type HashResponse struct {
	Hash      string `json:"hash"`
	Algorithm string `json:"algorithm"`
	Length    int    `json:"length"`
}

// FileHashResponse adds the upload metadata to a digest.
type FileHashResponse struct {
	HashResponse
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}

type PasswordHashResponse struct {
	Hash string `json:"hash"`
}

type PasswordVerifyRequest struct {
	Input string `json:"input"`
	Hash  string `json:"hash"`
}

type PasswordVerifyResponse struct {
	Match   bool   `json:"match"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type FormatRequest struct {
	Input      string `json:"input"`
	IndentSize *int   `json:"indentSize"`
}

type FormatResponse struct {
	Output  string `json:"output"`
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}

type DiffRequest struct {
	Original string `json:"original"`
	Modified string `json:"modified"`
}

type DiffLine struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	OldNumber int    `json:"oldLineNumber,omitempty"`
	NewNumber int    `json:"newLineNumber,omitempty"`
}

type DiffResponse struct {
	Lines     []DiffLine `json:"lines"`
	Additions int        `json:"additions"`
	Deletions int        `json:"deletions"`
	Unchanged int        `json:"unchanged"`
	Identical bool       `json:"identical"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
