package fixedstr

// FindNotOfTraits returns the index of the first element of s that tr.Find
// does not locate in set, or len(s) if every element is in set.
func FindNotOfTraits[C Char, T Traits[C]](tr T, s, set []C) int {
	for i := range s {
		if tr.Find(set, s[i]) < 0 {
			return i
		}
	}
	return len(s)
}

// FindNotOf is FindNotOfTraits with CharTraits.
func FindNotOf[C Char](s, set []C) int {
	return FindNotOfTraits(CharTraits[C]{}, s, set)
}
