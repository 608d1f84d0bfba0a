package rdf

// Namespaces of the vocabularies the model relies on.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

const (
	// RDFLangString is the datatype of language-tagged string values.
	RDFLangString = RDFNamespace + "langString"
	// RDFType is rdf:type.
	RDFType = RDFNamespace + "type"
	// XSDString is the datatype of plain literals.
	XSDString = XSDNamespace + "string"
)

// Common XSD datatypes.
const (
	XSDBoolean  = XSDNamespace + "boolean"
	XSDInteger  = XSDNamespace + "integer"
	XSDDecimal  = XSDNamespace + "decimal"
	XSDDouble   = XSDNamespace + "double"
	XSDDate     = XSDNamespace + "date"
	XSDDateTime = XSDNamespace + "dateTime"
)

var (
	langStringIRI = IRI{value: RDFLangString}
	xsdStringIRI  = IRI{value: XSDString}
)
