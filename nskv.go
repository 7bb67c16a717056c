// Package nskv provides namespaced, serializing access to a flat key-value
// backend.
//
// Multiple stores share a single backing without collision: every key is
// physically stored as "namespace.key". Values are serialized to strings on
// the way in and unserialized on the way out by a codec you supply.
//
// Example usage:
//
//		serialize, unserialize := nskv.JSONCodec[Car]()
//		store, err := nskv.New(nskv.Args[Car]{
//			Backing:     backing.NewMemory(),
//			Namespace:   "shop",
//			Serialize:   serialize,
//			Unserialize: unserialize,
//		})
//		if err != nil {
//			return err
//		}
//
//		// Store and fetch values by logical key
//		err = store.Set("cars.bmw.large", Car{Doors: 4})
//		if err != nil {
//			return err
//		}
//		car, err := store.Get("cars.bmw.large")
//		if err != nil {
//			return err
//		}
//		fmt.Println(car)
//
//		// Find keys with a dot-segmented wildcard pattern
//		keys, err := store.FindKeys("cars.*.large")
//		if err != nil {
//			return err
//		}
//		fmt.Println(keys)
//
//		// Drop everything in this namespace, leaving other namespaces alone
//		return store.Clear()
package nskv

import "github.com/mplewis/nskv/backing"

// Key is the caller-facing ("logical") key for a key-value pair in a
// namespace. The key physically stored in the backing is "namespace.key".
type Key = string

// Backing is the datastore contract a Store reads and writes through. See
// the backing package for implementations.
type Backing = backing.Backing
