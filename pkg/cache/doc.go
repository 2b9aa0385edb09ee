/*
Package cache implements table caching and compute coordination.

It sits between the runner and a ports.TableStore: a table is looked up by
key and, on a miss, computed exactly once while the key is locked. Local
goroutines are serialized with reference-counted mutexes; replicas sharing a
store are serialized with an optional ports.DistributedLocker.
*/
package cache
