package interfaces

type ICollection[K comparable, T any] interface {
	Load(key K) (item T, ok bool)
	Store(key K, item T)
	Delete(key K)
	Range(f func(key K, item T) bool)
	Len() int
}
