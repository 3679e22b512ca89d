//go:build !vectordebug

package vector

const debug = false

func assertIndex(int, int)    {}
func assertPosition(int, int) {}
func assertNotEmpty(int)      {}
