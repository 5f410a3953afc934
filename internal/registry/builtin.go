package registry

// Builtin returns the long-order sorting functions shipped with the
// TSODLULS library, in menu order.
func Builtin() *Registry {
	return New(
		Entry{
			Name: "TSODLULS sort",
			Descriptor: Descriptor{
				Function: "TSODLULS_sort",
				Summary:  "current state of the art sort for nextified strings",
			},
		},
		Entry{
			Name: "TSODLULS stable sort",
			Descriptor: Descriptor{
				Function: "TSODLULS_sort_stable",
				Stable:   true,
				Summary:  "current state of the art stable sort for nextified strings",
			},
		},
		Entry{
			Name: "Radix sort (octets, counting sort)",
			Descriptor: Descriptor{
				Function: "TSODLULS_sort_radix8_count",
				Stable:   true,
				Summary:  "radix sort on octet digits, counting sort as subroutine",
			},
		},
		Entry{
			Name: "Radix sort (octets, counting sort, insertion sort)",
			Descriptor: Descriptor{
				Function: "TSODLULS_sort_radix8_count_insertion",
				Stable:   true,
				Summary:  "radix8 counting sort with insertion sort on small buckets",
			},
		},
	)
}
