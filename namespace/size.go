package namespace

import "math"

// StandardURI is the URI of the standard namespace, always at index 0.
const StandardURI = "http://opcfoundation.org/UA/"

// Standard is the index of the standard namespace.
const Standard uint16 = 0

// MaxLen is the largest number of namespaces an array can hold.
const MaxLen = math.MaxUint16 + 1
