package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// TraitSet is an unordered set of trait identifiers
type TraitSet map[string]struct{}

func NewTraitSet(traitIDs ...string) TraitSet {
	ts := make(TraitSet, len(traitIDs))
	for _, id := range traitIDs {
		ts[id] = struct{}{}
	}
	return ts
}

func (ts TraitSet) Add(traitIDs ...string) {
	for _, id := range traitIDs {
		ts[id] = struct{}{}
	}
}

func (ts TraitSet) Has(traitID string) bool {
	_, ok := ts[traitID]
	return ok
}

// Contains returns true if every trait in other is also in ts
func (ts TraitSet) Contains(other TraitSet) bool {
	for id := range other {
		if !ts.Has(id) {
			return false
		}
	}
	return true
}

func (ts TraitSet) Clone() TraitSet {
	clone := make(TraitSet, len(ts))
	for id := range ts {
		clone[id] = struct{}{}
	}
	return clone
}

// Union returns a new set holding the traits of both sets
func (ts TraitSet) Union(other TraitSet) TraitSet {
	u := ts.Clone()
	for id := range other {
		u[id] = struct{}{}
	}
	return u
}

func (ts TraitSet) Sorted() []string {
	ids := make([]string, 0, len(ts))
	for id := range ts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (ts TraitSet) String() string {
	return "{" + strings.Join(ts.Sorted(), ", ") + "}"
}

func (ts TraitSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Sorted())
}

func (ts *TraitSet) UnmarshalJSON(data []byte) error {
	ids := []string{}
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("failed to unmarshal trait set: %w", err)
	}
	*ts = NewTraitSet(ids...)
	return nil
}

// TraitsData holds property values for a set of traits. A trait may be
// imbued without any properties set. Values are one of bool, int64,
// float64 or string.
//
// All getters are safe to call on a nil *TraitsData.
type TraitsData struct {
	traits map[string]map[string]any
}

type TraitsDataDecoratorFunc func(td *TraitsData)

func NewTraitsData(decorators ...TraitsDataDecoratorFunc) *TraitsData {
	td := &TraitsData{
		traits: map[string]map[string]any{},
	}

	for _, decorator := range decorators {
		decorator(td)
	}

	return td
}

func Imbue(traitIDs ...string) TraitsDataDecoratorFunc {
	return func(td *TraitsData) {
		for _, id := range traitIDs {
			td.AddTrait(id)
		}
	}
}

func ImbueSet(traitSet TraitSet) TraitsDataDecoratorFunc {
	return Imbue(traitSet.Sorted()...)
}

// Property panics if value is not a supported property type. It is meant
// for building trait data from literals.
func Property(traitID, key string, value any) TraitsDataDecoratorFunc {
	return func(td *TraitsData) {
		if err := td.Set(traitID, key, value); err != nil {
			panic(err)
		}
	}
}

func (td *TraitsData) AddTrait(traitID string) {
	if td.traits == nil {
		td.traits = map[string]map[string]any{}
	}
	if _, ok := td.traits[traitID]; !ok {
		td.traits[traitID] = map[string]any{}
	}
}

func (td *TraitsData) HasTrait(traitID string) bool {
	if td == nil {
		return false
	}
	_, ok := td.traits[traitID]
	return ok
}

func (td *TraitsData) TraitSet() TraitSet {
	ts := TraitSet{}
	if td == nil {
		return ts
	}
	for id := range td.traits {
		ts.Add(id)
	}
	return ts
}

// TraitPropertyKeys returns the keys of all properties set for a trait, sorted
func (td *TraitsData) TraitPropertyKeys(traitID string) []string {
	if td == nil {
		return []string{}
	}

	props := td.traits[traitID]
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func (td *TraitsData) GetTraitProperty(traitID, key string) (any, bool) {
	if td == nil {
		return nil, false
	}
	props, ok := td.traits[traitID]
	if !ok {
		return nil, false
	}
	v, ok := props[key]
	return v, ok
}

func (td *TraitsData) StringProperty(traitID, key, defaultValue string) string {
	if v, ok := td.GetTraitProperty(traitID, key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return defaultValue
}

// LookupString returns the value and true only if the property is set and is a string
func (td *TraitsData) LookupString(traitID, key string) (string, bool) {
	v, ok := td.GetTraitProperty(traitID, key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (td *TraitsData) BoolProperty(traitID, key string, defaultValue bool) bool {
	if v, ok := td.GetTraitProperty(traitID, key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultValue
}

func (td *TraitsData) IntProperty(traitID, key string, defaultValue int64) int64 {
	if v, ok := td.GetTraitProperty(traitID, key); ok {
		if i, ok := v.(int64); ok {
			return i
		}
	}
	return defaultValue
}

func (td *TraitsData) FloatProperty(traitID, key string, defaultValue float64) float64 {
	if v, ok := td.GetTraitProperty(traitID, key); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return defaultValue
}

func (td *TraitsData) SetString(traitID, key, value string) {
	td.set(traitID, key, value)
}

func (td *TraitsData) SetBool(traitID, key string, value bool) {
	td.set(traitID, key, value)
}

func (td *TraitsData) SetInt(traitID, key string, value int64) {
	td.set(traitID, key, value)
}

func (td *TraitsData) SetFloat(traitID, key string, value float64) {
	td.set(traitID, key, value)
}

// Set stores a property value, normalizing integer and floating point
// types to int64 and float64. The trait is imbued if it was not already.
func (td *TraitsData) Set(traitID, key string, value any) error {
	switch v := value.(type) {
	case bool, int64, float64, string:
		td.set(traitID, key, v)
	case int:
		td.set(traitID, key, int64(v))
	case int32:
		td.set(traitID, key, int64(v))
	case float32:
		td.set(traitID, key, float64(v))
	case json.Number:
		if i, err := v.Int64(); err == nil {
			td.set(traitID, key, i)
			return nil
		}
		f, err := v.Float64()
		if err != nil {
			return fmt.Errorf("property %s of trait %s is not a valid number: %w", key, traitID, err)
		}
		td.set(traitID, key, f)
	default:
		return fmt.Errorf("property %s of trait %s has unsupported type %T", key, traitID, value)
	}

	return nil
}

func (td *TraitsData) set(traitID, key string, value any) {
	td.AddTrait(traitID)
	td.traits[traitID][key] = value
}

// Clone returns a deep copy
func (td *TraitsData) Clone() *TraitsData {
	clone := NewTraitsData()
	if td == nil {
		return clone
	}
	for id, props := range td.traits {
		clone.AddTrait(id)
		for k, v := range props {
			clone.traits[id][k] = v
		}
	}
	return clone
}

// Merge copies all traits and properties from other into td, overwriting
// properties present in both.
func (td *TraitsData) Merge(other *TraitsData) {
	if other == nil {
		return
	}
	for id, props := range other.traits {
		td.AddTrait(id)
		for k, v := range props {
			td.traits[id][k] = v
		}
	}
}

func (td *TraitsData) MarshalJSON() ([]byte, error) {
	if td == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(td.traits)
}

func (td *TraitsData) UnmarshalJSON(data []byte) error {
	contents := map[string]map[string]any{}

	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()

	if err := d.Decode(&contents); err != nil {
		return fmt.Errorf("failed to unmarshal traits data: %w", err)
	}

	td.traits = map[string]map[string]any{}

	for id, props := range contents {
		td.AddTrait(id)
		for k, v := range props {
			if err := td.Set(id, k, v); err != nil {
				return err
			}
		}
	}

	return nil
}
