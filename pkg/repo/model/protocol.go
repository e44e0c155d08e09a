package model

type ProtocolType string

const (
	ProtocolDNARNA       ProtocolType = "DNA/RNA"
	ProtocolProtein      ProtocolType = "Protein"
	ProtocolCellCulture  ProtocolType = "Cell Culture"
	ProtocolBiochemistry ProtocolType = "Biochemistry"
	ProtocolOther        ProtocolType = "Other"
)

// Protocol steps are a newline-delimited blob, split only on display.
// UpdatedAt doubles as the last-modified stamp.
type Protocol struct {
	BaseModel
	Title        string       `gorm:"size:255;not null;index" json:"title"`
	ProtocolType ProtocolType `gorm:"size:32;not null;index" json:"protocol_type"`
	Description  string       `gorm:"type:text" json:"description"`
	Steps        string       `gorm:"type:text" json:"steps"`
	CreatedBy    string       `gorm:"size:64;index" json:"created_by"`
}
