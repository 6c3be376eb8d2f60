package service

import documentdomain "github.com/smallbiznis/komisi/internal/document/domain"

// documentRule fixes, per document type, the sign of the commission amount
// and whether eligibility requires the document to be fully paid. Document
// types without a rule never accrue commission.
type documentRule struct {
	negate       bool
	requiresPaid bool
}

var documentRules = map[documentdomain.DocumentType]documentRule{
	documentdomain.DocumentTypeInvoice:    {negate: false, requiresPaid: true},
	documentdomain.DocumentTypeCreditNote: {negate: true, requiresPaid: false},
}
