package turtle

import (
	"sort"
	"strconv"
	"strings"
)

// Write serializes the document to Turtle text. Output is deterministic:
// prefixes and subjects are sorted, statements are grouped per subject with
// ';' lists, and rdf:type is written first as 'a'. Re-parsing the output
// yields the same statement set (blank node labels preserved).
func Write(doc *Document) []byte {
	var sb strings.Builder

	labels := make([]string, 0, len(doc.Prefixes))
	for label := range doc.Prefixes {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		sb.WriteString("@prefix ")
		sb.WriteString(label)
		sb.WriteString(": <")
		sb.WriteString(doc.Prefixes[label])
		sb.WriteString("> .\n")
	}
	if len(labels) > 0 {
		sb.WriteString("\n")
	}

	bySubject := make(map[Term][]Statement)
	var subjects []Term
	for _, st := range doc.Statements {
		if _, ok := bySubject[st.Subject]; !ok {
			subjects = append(subjects, st.Subject)
		}
		bySubject[st.Subject] = append(bySubject[st.Subject], st)
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjectSortKey(subjects[i]) < subjectSortKey(subjects[j])
	})

	for i, subj := range subjects {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeSubjectGroup(&sb, subj, bySubject[subj], doc.Prefixes)
	}
	return []byte(sb.String())
}

// subjectSortKey orders IRI subjects before blank nodes, each group sorted
// lexically.
func subjectSortKey(t Term) string {
	switch v := t.(type) {
	case IRI:
		return "0" + string(v)
	case BlankNode:
		return "1" + string(v)
	default:
		return "2" + t.String()
	}
}

func writeSubjectGroup(sb *strings.Builder, subj Term, statements []Statement, prefixes map[string]string) {
	objects := make(map[IRI][]Term)
	var preds []IRI
	for _, st := range statements {
		if _, ok := objects[st.Predicate]; !ok {
			preds = append(preds, st.Predicate)
		}
		objects[st.Predicate] = append(objects[st.Predicate], st.Object)
	}
	sort.Slice(preds, func(i, j int) bool {
		// rdf:type leads the group for readability; the rest sort lexically.
		if preds[i] == RDFType {
			return preds[j] != RDFType
		}
		if preds[j] == RDFType {
			return false
		}
		return preds[i] < preds[j]
	})

	sb.WriteString(renderTerm(subj, prefixes))
	sb.WriteString("\n")
	for pi, pred := range preds {
		sb.WriteString("\t")
		if pred == RDFType {
			sb.WriteString("a")
		} else {
			sb.WriteString(renderTerm(pred, prefixes))
		}
		objs := objects[pred]
		rendered := make([]string, len(objs))
		for i, o := range objs {
			rendered[i] = renderTerm(o, prefixes)
		}
		sort.Strings(rendered)
		rendered = dedupeSorted(rendered)
		for i, r := range rendered {
			if i == 0 {
				sb.WriteString(" ")
			} else {
				sb.WriteString(" ,\n\t\t")
			}
			sb.WriteString(r)
		}
		if pi < len(preds)-1 {
			sb.WriteString(" ;\n")
		} else {
			sb.WriteString(" .\n")
		}
	}
}

func dedupeSorted(in []string) []string {
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// renderTerm produces the Turtle token for a term, shrinking IRIs to
// prefixed names where a declared prefix applies and using literal
// shorthand for numeric and boolean values.
func renderTerm(t Term, prefixes map[string]string) string {
	switch v := t.(type) {
	case IRI:
		if pname, ok := shrinkIRI(string(v), prefixes); ok {
			return pname
		}
		return v.String()
	case BlankNode:
		return v.String()
	case Literal:
		return renderLiteral(v, prefixes)
	default:
		return t.String()
	}
}

func renderLiteral(l Literal, prefixes map[string]string) string {
	switch l.Datatype {
	case XSDInteger:
		if _, err := strconv.ParseInt(l.Value, 10, 64); err == nil {
			return l.Value
		}
	case XSDDecimal:
		if strings.Contains(l.Value, ".") {
			if _, err := strconv.ParseFloat(l.Value, 64); err == nil {
				return l.Value
			}
		}
	case XSDDouble:
		if strings.ContainsAny(l.Value, "eE") {
			if _, err := strconv.ParseFloat(l.Value, 64); err == nil {
				return l.Value
			}
		}
	case XSDBoolean:
		if l.Value == "true" || l.Value == "false" {
			return l.Value
		}
	}
	s := `"` + escapeLiteral(l.Value) + `"`
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != "" && l.Datatype != XSDString:
		if pname, ok := shrinkIRI(string(l.Datatype), prefixes); ok {
			return s + "^^" + pname
		}
		return s + "^^" + l.Datatype.String()
	default:
		return s
	}
}

// shrinkIRI rewrites an IRI as prefix:local when a declared namespace is a
// prefix of it and the remainder is a safe local name. The longest matching
// namespace wins.
func shrinkIRI(iri string, prefixes map[string]string) (string, bool) {
	bestLabel, bestNS := "", ""
	found := false
	for label, ns := range prefixes {
		if ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !found || len(ns) > len(bestNS) || (len(ns) == len(bestNS) && label < bestLabel) {
			bestLabel, bestNS = label, ns
			found = true
		}
	}
	if !found {
		return "", false
	}
	local := iri[len(bestNS):]
	if !safeLocalName(local) {
		return "", false
	}
	return bestLabel + ":" + local, true
}

func safeLocalName(local string) bool {
	if local == "" {
		return true
	}
	if strings.HasSuffix(local, ".") {
		return false
	}
	for i, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9', r == '-', r == '.':
			if i == 0 && r == '.' {
				return false
			}
		default:
			return false
		}
	}
	return true
}
