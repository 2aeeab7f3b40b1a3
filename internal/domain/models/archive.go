package models

import "time"

// DocumentType indicates the stored file format of an archive document.
type DocumentType string

const (
	DocPDF   DocumentType = "PDF"
	DocImage DocumentType = "IMG"
	DocWord  DocumentType = "DOC"
)

// DocumentCategory groups archive documents by purpose.
type DocumentCategory string

const (
	DocFiscal    DocumentCategory = "Fiscal"
	DocProtocol  DocumentCategory = "Protocol"
	DocReference DocumentCategory = "Reference"
)

// ArchiveDocument is a filed record in the reference library. Documents are
// deletable, unlike inventory items.
type ArchiveDocument struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      DocumentType     `json:"type"`
	Category  DocumentCategory `json:"category"`
	DateAdded time.Time        `json:"dateAdded"`
	Size      string           `json:"size"`
}
