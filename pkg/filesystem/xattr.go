package filesystem

// SizeAttribute queries the size of the extended attribute with the specified
// name on the filesystem entry at the specified path, following symbolic
// links. It shares GetAttribute's error behavior.
func SizeAttribute(path, name string) (int, error) {
	return GetAttribute(path, name, nil)
}

// LSizeAttribute queries the size of the extended attribute with the specified
// name on the filesystem entry at the specified path without following
// symbolic links. It shares LGetAttribute's error behavior.
func LSizeAttribute(path, name string) (int, error) {
	return LGetAttribute(path, name, nil)
}
