package utilx

// Must unwraps a `(T, error)` return in contexts that cannot fail or
// cannot report an error, panicking otherwise.
//
//	fd, err := testx.ParseFormData(boundary, body)
//	require.NoError(t, err)
//
// becomes
//
//	fd := utilx.Must(testx.ParseFormData(boundary, body))
func Must[T any](item T, err error) T {
	if err != nil {
		panic(err.Error())
	}
	return item
}
