package domain

import (
	"slices"
	"strings"
	"time"
)

// PredicateKind identifica o tipo de nó da árvore de predicados
type PredicateKind string

const (
	PredicateAnd        PredicateKind = "and"
	PredicateOr         PredicateKind = "or"
	PredicateContains   PredicateKind = "contains"   // substring sem diferenciar maiúsculas
	PredicateIn         PredicateKind = "in"         // valor escalar pertence ao conjunto
	PredicateIntersects PredicateKind = "intersects" // campo multivalorado compartilha ao menos um valor
	PredicateRange      PredicateKind = "range"      // limites inclusivos, nil = aberto
)

// Predicate é uma árvore de condições independente de armazenamento.
// Cada adaptador de banco traduz a árvore para a sua sintaxe nativa.
type Predicate struct {
	Kind     PredicateKind `json:"kind"`
	Field    Field         `json:"field,omitempty"`
	Children []Predicate   `json:"children,omitempty"`
	Term     string        `json:"term,omitempty"`
	Values   []string      `json:"values,omitempty"`
	Min      any           `json:"min,omitempty"`
	Max      any           `json:"max,omitempty"`
}

func And(children ...Predicate) Predicate {
	return Predicate{Kind: PredicateAnd, Children: children}
}

func Or(children ...Predicate) Predicate {
	return Predicate{Kind: PredicateOr, Children: children}
}

func Contains(field Field, term string) Predicate {
	return Predicate{Kind: PredicateContains, Field: field, Term: term}
}

func In(field Field, values []string) Predicate {
	return Predicate{Kind: PredicateIn, Field: field, Values: values}
}

func Intersects(field Field, values []string) Predicate {
	return Predicate{Kind: PredicateIntersects, Field: field, Values: values}
}

// Range cria um intervalo inclusivo. Os limites devem ser int, float64 ou time.Time; nil deixa o lado aberto.
func Range(field Field, lower, upper any) Predicate {
	return Predicate{Kind: PredicateRange, Field: field, Min: lower, Max: upper}
}

// MatchesAll indica a conjunção vazia, que não filtra nada
func (p Predicate) MatchesAll() bool {
	return p.Kind == PredicateAnd && len(p.Children) == 0
}

// Matches avalia o predicado em memória sobre um registro
func (p Predicate) Matches(record *SalesRecord) bool {
	switch p.Kind {
	case PredicateAnd:
		for _, child := range p.Children {
			if !child.Matches(record) {
				return false
			}
		}
		return true
	case PredicateOr:
		for _, child := range p.Children {
			if child.Matches(record) {
				return true
			}
		}
		return false
	case PredicateContains:
		value, _ := record.Value(p.Field).(string)
		return strings.Contains(strings.ToLower(value), strings.ToLower(p.Term))
	case PredicateIn:
		value, _ := record.Value(p.Field).(string)
		return slices.Contains(p.Values, value)
	case PredicateIntersects:
		values, _ := record.Value(p.Field).([]string)
		for _, v := range values {
			if slices.Contains(p.Values, v) {
				return true
			}
		}
		return false
	case PredicateRange:
		value := record.Value(p.Field)
		if p.Min != nil {
			if c, ok := compare(value, p.Min); !ok || c < 0 {
				return false
			}
		}
		if p.Max != nil {
			if c, ok := compare(value, p.Max); !ok || c > 0 {
				return false
			}
		}
		return true
	}
	return false
}

// compare retorna -1, 0 ou 1; ok é falso quando os tipos não são comparáveis
func compare(a, b any) (int, bool) {
	switch av := a.(type) {
	case int:
		switch bv := b.(type) {
		case int:
			return cmpOrdered(av, bv), true
		case float64:
			return cmpOrdered(float64(av), bv), true
		}
	case float64:
		switch bv := b.(type) {
		case float64:
			return cmpOrdered(av, bv), true
		case int:
			return cmpOrdered(av, float64(bv)), true
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), true
		}
	}
	return 0, false
}

func cmpOrdered[T int | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
