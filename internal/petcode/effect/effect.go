// Package effect converts pet effects to and from the string keys used to
// look them up externally.
//
// An effect (id, status, args) becomes an EffectParam whose Name is the id
// followed by each arg, joined with underscores ("67_1_5"), and whose Type is
// the coarse classification of the status.
package effect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seerbp/petcode/internal/petcode"
)

// Type is the coarse classification of an effect status.
type Type int32

const (
	TypeNone      Type = 0
	TypeGeneral   Type = 1
	TypeItem      Type = 2
	TypeVariation Type = 4
	TypeSoulmark  Type = 5
	TypeTeamTech  Type = 7
	TypeOther     Type = 99
)

// OtherStatus is the status every OTHER param decodes to. The original status
// is not recoverable.
const OtherStatus int32 = 99

// Separator joins the id and args in a param name.
const Separator = "_"

var statusToType = map[int32]Type{
	0: TypeNone,
	1: TypeGeneral,
	2: TypeItem,
	4: TypeVariation,
	5: TypeSoulmark,
	7: TypeTeamTech,
}

var typeToStatus = map[Type]int32{
	TypeNone:      0,
	TypeGeneral:   1,
	TypeItem:      2,
	TypeVariation: 4,
	TypeSoulmark:  5,
	TypeTeamTech:  7,
	TypeOther:     OtherStatus,
}

var typeNames = map[Type]string{
	TypeNone:      "NONE",
	TypeGeneral:   "GENERAL",
	TypeItem:      "ITEM",
	TypeVariation: "VARIATION",
	TypeSoulmark:  "SOULMARK",
	TypeTeamTech:  "TEAM_TECH",
	TypeOther:     "OTHER",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

// ParseType looks up a Type by its name ("GENERAL", "TEAM_TECH", ...).
func ParseType(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("effect: unknown type %q", name)
}

// Param is the external lookup key for an effect.
type Param struct {
	Type Type
	Name string
}

// Classify maps a status to its Type. Any status outside the table is OTHER.
func Classify(status int32) Type {
	if t, ok := statusToType[status]; ok {
		return t
	}
	return TypeOther
}

// Declassify maps a Type back to a status. OTHER yields OtherStatus.
//
// Postcondition: Returns an error for a Type outside the closed set.
func Declassify(t Type) (int32, error) {
	s, ok := typeToStatus[t]
	if !ok {
		return 0, fmt.Errorf("effect: unknown type %d", int32(t))
	}
	return s, nil
}

// ToParam encodes e as a lookup key.
func ToParam(e petcode.Effect) Param {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(int64(e.ID), 10))
	for _, a := range e.Args {
		b.WriteString(Separator)
		b.WriteString(strconv.FormatInt(int64(a), 10))
	}
	return Param{Type: Classify(e.Status), Name: b.String()}
}

// FromParam decodes a lookup key back into an Effect.
//
// Precondition: p.Name is an id followed by zero or more args, each a signed
// decimal int32, separated by Separator.
// Postcondition: Returns a *petcode.DecodeError for malformed names or an
// unknown Type. An OTHER param decodes with Status == OtherStatus. A name
// without args decodes with nil Args.
func FromParam(p Param) (petcode.Effect, error) {
	status, err := Declassify(p.Type)
	if err != nil {
		return petcode.Effect{}, petcode.NewDecodeError(petcode.FormatEffect, err)
	}
	if p.Name == "" {
		return petcode.Effect{}, petcode.NewDecodeError(petcode.FormatEffect, errors.New("empty name"))
	}

	head, rest, hasArgs := strings.Cut(p.Name, Separator)
	id, err := parseToken(head)
	if err != nil {
		return petcode.Effect{}, petcode.NewDecodeError(petcode.FormatEffect, fmt.Errorf("id: %w", err))
	}

	e := petcode.Effect{ID: id, Status: status}
	if !hasArgs {
		return e, nil
	}
	tokens := strings.Split(rest, Separator)
	e.Args = make([]int32, len(tokens))
	for i, tok := range tokens {
		v, err := parseToken(tok)
		if err != nil {
			return petcode.Effect{}, petcode.NewDecodeError(petcode.FormatEffect, fmt.Errorf("arg %d: %w", i, err))
		}
		e.Args[i] = v
	}
	return e, nil
}

func parseToken(tok string) (int32, error) {
	if tok == "" {
		return 0, errors.New("empty token")
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
