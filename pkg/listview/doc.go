// Package listview records the operations on a list and draws the list after
// every operation that changes it.
//
// A [View] wraps a [list.Interface] together with an [engine.Engine] and a
// [Transcript]. Each method performs the list operation and then notifies the
// transcript explicitly:
//
//   - mutating operations (Add, Insert, Set, RemoveAt, ...) write an h2 entry
//     followed by a freshly rendered diagram
//   - read-only operations (Size, Get, IndexOf, String, ...) write an h4 entry
//     before the read, unless [Options.SkipReads] is set
//
// Operations that fail, such as an out-of-range Insert, are not recorded.
// Every entry names the file and line that called the View method.
//
//	doc, _ := transcript.Create("out.html", transcript.Options{Legend: true})
//	v, _ := listview.New(list.New[string](), doc, listview.Options{})
//	defer v.Close()
//	_ = v.Add("A")
//	_ = v.AddFirst("B")
//
// By default the engine reads the list through its own Accessor method. With
// [Options.Discover] the fields are instead located by name through
// accessor.Discover, and the discovered field names are logged.
package listview
