package grammar

import "strings"

// CollapseDotSegments removes "." and ".." segments from path. A rooted path
// keeps its leading "/" when rooted is true, which is the case for URIs with
// an authority component. A ".." that would climb above the root is kept
// verbatim rather than dropped: for an unrooted relative path there is no
// root to stop at, and a rooted path never climbs above "/".
func CollapseDotSegments(path string, rooted bool) string {
	if path == "" {
		return ""
	}

	segs := strings.Split(path, "/")
	stack := make([]string, 0, len(segs))
	for _, seg := range segs {
		switch seg {
		case "", ".":
			// the first empty segment of a rooted path encodes the leading "/"
			if seg == "" && len(stack) == 0 && rooted {
				stack = append(stack, "")
			}
		case "..":
			if len(stack) > 0 && !(len(stack) == 1 && stack[0] == "" && rooted) {
				stack = stack[:len(stack)-1]
				continue
			}
			stack = append(stack, "..")
		default:
			stack = append(stack, seg)
		}
	}

	switch {
	case len(stack) == 0:
		if rooted {
			return "/"
		}
		return ""
	case len(stack) == 1 && stack[0] == "":
		return "/"
	}
	return strings.Join(stack, "/")
}
