package fixcodec

// field is a single (tag, value) pair as stored in a fieldList. Value
// is kept as a Go string; for length-prefixed fields this string may
// contain embedded SOH bytes (spec §3).
type field struct {
	Tag   int
	Value string
}

// fieldList is an ordered, duplicate-permitting sequence of fields,
// the storage behind Message's header and body, per spec §4.3.
// Adapted from the teacher's map-backed FieldMap (goutham-ab-quickfix
// message.go), which cannot represent repeated tags; a FIX repeating
// group needs exactly that, so storage here is a plain slice instead.
type fieldList struct {
	fields []field
}

func (fl *fieldList) append(tag int, value string) {
	fl.fields = append(fl.fields, field{Tag: tag, Value: value})
}

func (fl *fieldList) has(tag int) bool {
	for _, f := range fl.fields {
		if f.Tag == tag {
			return true
		}
	}
	return false
}

// removeNth removes the n-th (1-based) occurrence of tag from fl and
// reports whether an occurrence existed, renumbering n against the
// remaining count of the caller's combined header+body sequence (the
// caller passes the number of matches already consumed elsewhere via
// skip).
func (fl *fieldList) removeNth(tag, n, skip int) (removed bool, consumed int) {
	count := skip
	for i := range fl.fields {
		if fl.fields[i].Tag == tag {
			count++
			if count == n {
				fl.fields = append(fl.fields[:i], fl.fields[i+1:]...)
				return true, count
			}
		}
	}
	return false, count
}

func (fl *fieldList) clear() {
	fl.fields = fl.fields[:0]
}

func (fl *fieldList) clone() fieldList {
	out := fieldList{fields: make([]field, len(fl.fields))}
	copy(out.fields, fl.fields)
	return out
}
