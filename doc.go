// Package jobject provides a dynamic-property object model for Go.
//
// # Overview
//
// jobject emulates a JavaScript-style property bag in Go's static type
// system. A small set of value kinds (primitives, strings, arrays,
// functions, dates, plain objects) carry a mutable table of named
// properties at run time. Each property is configured by a descriptor
// that controls whether it is writable, enumerable and configurable,
// and may be backed by a stored value or by a getter/setter pair.
//
//   - A clean, idiomatic Go API
//   - Per-kind built-in members (push, slice, concat, getTime, ...)
//     synthesized on demand rather than stored per instance
//   - Non-exceptional semantics: failed writes and unknown names
//     report false or an absent value, never an error
//
// # Quick Start
//
//	import "github.com/jobject-lang/jobject"
//
//	func main() {
//	    user := jobject.NewObject()
//	    user.Set("name", jobject.From("Alice"))
//	    user.Set("age", jobject.From(30))
//
//	    fmt.Println(user.Get("name")) // "Alice"
//	    fmt.Println(user.Names())     // [name age]
//
//	    tags := jobject.NewArrayOf(jobject.From("admin"), jobject.From("ops"))
//	    user.Set("tags", jobject.FromHolder(tags))
//
//	    push, _ := tags.Get("push").AsFunction()
//	    push.Call(jobject.From("dev"))
//	    fmt.Println(tags.Len()) // 3
//	}
//
// # Property Descriptors
//
// Define gives full control over a property's facets:
//
//	jobject.DefineValue(user, "id", jobject.From(7), false, true, false)
//	user.Set("id", jobject.From(8))   // false: not writable
//	user.Delete("id")                 // false: not configurable
//
// Accessor properties compute their value on every read:
//
//	jobject.DefineAccessor(user, "upper",
//	    func() jobject.Value {
//	        return jobject.From(strings.ToUpper(jobject.ToString(user.Get("name"))))
//	    },
//	    nil)
//
// # Resolution Order
//
// Reading a name consults, in order: the stored descriptor table, the
// kind's built-in members, the universal "toString" member, and finally
// resolves to the absent value. Built-ins are synthesized fresh on each
// miss and close over the live object, so a fetched method always sees
// current state. Writing a name that only exists as a built-in method
// creates an ordinary stored property that shadows the built-in;
// Array's "length" and element indexes are the exception and always
// write through to the underlying sequence.
//
// # Concurrency
//
// Objects are not safe for concurrent use from multiple goroutines.
// Callers that share an object across goroutines must serialize access
// themselves; a read-modify-write such as Set is not otherwise atomic.
package jobject
