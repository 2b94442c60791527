// Package common holds enumerations shared between the command line
// surface and configuration so neither has to import the other.
package common

//go:generate go tool go-enum --marshal --names

// Specification of requested output format.
// ENUM(text, yaml, json)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".css"
	case OutputFmtYaml:
		return ".yaml"
	case OutputFmtJson:
		return ".json"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
