package ptr

// Int32 return a pointer to the input value
func Int32(value int32) *int32 {
	return &value
}
