package fixedstr

import "unsafe"

// CompareTraits orders s1 and s2 lexicographically using tr. When the
// lengths differ the result is -1 or +1; a proper prefix sorts first.
// Equal lengths return tr.Compare unchanged.
func CompareTraits[C Char, T Traits[C]](tr T, s1, s2 []C) int {
	n1, n2 := len(s1), len(s2)
	if n1 < n2 {
		if tr.Compare(s1, s2, n1) <= 0 {
			return -1
		}
		return 1
	}
	if n1 > n2 {
		if tr.Compare(s1, s2, n2) >= 0 {
			return 1
		}
		return -1
	}
	return tr.Compare(s1, s2, n1)
}

// Compare orders s1 and s2 by character value.
func Compare[C Char](s1, s2 []C) int {
	return CompareTraits(CharTraits[C]{}, s1, s2)
}

// CompareStorage compares the contents of two storages.
func CompareStorage[C Char](a, b Storage[C]) int {
	return Compare(a.Data()[:a.Size()], b.Data()[:b.Size()])
}

// CompareStrings compares two Go strings without copying them.
func CompareStrings(a, b string) int {
	return Compare(unsafe.Slice(unsafe.StringData(a), len(a)), unsafe.Slice(unsafe.StringData(b), len(b)))
}
