package refdoc

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// rawRecord mirrors one element of the source payload. Constructors and
// Events stay raw because their mere presence is the class/module
// discriminator, independent of their contents.
type rawRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Remarks     string   `json:"remarks"`
	Examples    []string `json:"examples"`
	DevNotes    string   `json:"devNotes"`
	Todo        []string `json:"todo"`
	Requires    []string `json:"requires"`

	Constructors json.RawMessage `json:"constructors"`
	Events       json.RawMessage `json:"events"`
	Properties   []rawMember     `json:"properties"`
	Methods      []rawMember     `json:"methods"`
	Functions    []rawMember     `json:"functions"`
}

type rawMember struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Params      []rawParam `json:"params"`
	Returns     *Return    `json:"returns"`
	Throws      []Throws   `json:"throws"`
	Static      bool       `json:"static"`
	Protected   bool       `json:"protected"`
	Default     bool       `json:"default"`
	Deprecated  *struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	} `json:"deprecated"`
	Access   string   `json:"access"`
	Examples []string `json:"examples"`
}

type rawParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
	Default     string `json:"default"`
}

// Normalize parses a raw JSON array and produces the normalized document:
// each record is classified as a class or module, and every optional field
// is defaulted so rendering never special-cases missing values.
func Normalize(data []byte) (*Document, error) {
	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	doc := &Document{
		SnapshotID: uuid.NewString(),
		Classes:    []Class{},
		Modules:    []Module{},
	}

	for i, rec := range records {
		if rec.Name == "" {
			return nil, fmt.Errorf("record %d has no name", i)
		}
		if rec.Constructors != nil || rec.Events != nil {
			cls, err := normalizeClass(rec)
			if err != nil {
				return nil, fmt.Errorf("record %d (%s): %w", i, rec.Name, err)
			}
			doc.Classes = append(doc.Classes, cls)
		} else {
			doc.Modules = append(doc.Modules, normalizeModule(rec))
		}
	}

	return doc, nil
}

func normalizeClass(rec rawRecord) (Class, error) {
	ctors, err := memberList(rec.Constructors)
	if err != nil {
		return Class{}, fmt.Errorf("constructors: %w", err)
	}
	events, err := memberList(rec.Events)
	if err != nil {
		return Class{}, fmt.Errorf("events: %w", err)
	}
	return Class{
		ItemMeta:     normalizeMeta(rec),
		Constructors: normalizeMembers(ctors, false),
		Properties:   normalizeMembers(rec.Properties, true),
		Methods:      normalizeMembers(rec.Methods, false),
		Events:       normalizeMembers(events, false),
	}, nil
}

func normalizeModule(rec rawRecord) Module {
	return Module{
		ItemMeta:  normalizeMeta(rec),
		Functions: normalizeMembers(rec.Functions, false),
	}
}

func normalizeMeta(rec rawRecord) ItemMeta {
	return ItemMeta{
		Name:        rec.Name,
		Description: rec.Description,
		Remarks:     rec.Remarks,
		Examples:    emptyIfNil(rec.Examples),
		DevNotes:    rec.DevNotes,
		Todo:        emptyIfNil(rec.Todo),
		Requires:    emptyIfNil(rec.Requires),
	}
}

// memberList decodes a raw constructors/events value. A null or absent value
// normalizes to an empty list.
func memberList(raw json.RawMessage) ([]rawMember, error) {
	if raw == nil || string(raw) == "null" {
		return nil, nil
	}
	var members []rawMember
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func normalizeMembers(raw []rawMember, property bool) []Member {
	members := make([]Member, 0, len(raw))
	for _, rm := range raw {
		m := Member{
			Name:          rm.Name,
			Description:   rm.Description,
			Params:        normalizeParams(rm.Params),
			Returns:       rm.Returns,
			Throws:        emptyIfNil(rm.Throws),
			Static:        rm.Static,
			Protected:     rm.Protected,
			DefaultMember: rm.Default,
			Examples:      emptyIfNil(rm.Examples),
		}
		if rm.Deprecated != nil {
			m.Deprecation = Deprecation{Deprecated: rm.Deprecated.Status, Message: rm.Deprecated.Message}
		}
		if property {
			m.Access = normalizeAccess(rm.Access)
		}
		members = append(members, m)
	}
	return members
}

func normalizeParams(raw []rawParam) []Param {
	params := make([]Param, 0, len(raw))
	for _, rp := range raw {
		params = append(params, Param(rp))
	}
	return params
}

func normalizeAccess(access string) AccessMode {
	switch AccessMode(access) {
	case AccessReadOnly:
		return AccessReadOnly
	case AccessWriteOnly:
		return AccessWriteOnly
	default:
		return AccessReadWrite
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
