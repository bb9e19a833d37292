/*
Command jfilter filters a JSON array of objects by a simple condition and
trims each surviving object down to chosen keys. It's meant for ad-hoc
massaging of small and medium documents, e.g. API responses saved to a file.

	; cat people.json
	[
	  {"name": "Dana", "id": 5, "age": 30, "country": "IL"},
	  {"name": "Noa", "id": 6, "age": 16, "country": "IL"},
	  {"name": "Sam", "id": 7, "age": 41, "country": "US", "active": true}
	]
	; jfilter people.json --where 'age>=18 and country==IL' --include-keys name id
	[
	  {
	    "name": "Dana",
	    "id": 5
	  }
	]

The path comes first (or anywhere before --include-keys), since
--include-keys takes every following word up to the next option as a key.
Use - to read standard input, and ./- for a file named -. Keys missing
from a record come out as null:

	; jfilter people.json --include-keys name active
	[
	  {
	    "name": "Dana",
	    "active": null
	  },
	  ...

Array elements that aren't objects are dropped. Without --where and
--include-keys the output is the input, reformatted with a two-space
indent. Non-ASCII text is written as is.

Conditions

A --where expression is a sequence of comparisons separated by and/or,
written without spaces inside a comparison:

	age>=18
	active==true or country==US
	score<9.5 AND name!=Anonymous

The operators are == != >= <= > <. The right-hand side is an integer if it
reads as one, else a float, else a boolean if it's true or false in any
case, else a string taken literally (country==us won't match "US").
Digits may be grouped with underscores, as in n>=1_000. Integers that don't
fit in 64 bits are compared as floats.
Booleans in records compare as 0 and 1. A comparison between a string and a
number is never true, except for !=. A record without the key fails the
comparison.

Beware of two things. First, the expression is evaluated strictly from
left to right, with no precedence and no parentheses, and a connective
takes effect one comparison late: each result is combined with the ones
before it using the connective that preceded the previous comparison. So

	a==1 or b==2 and c==3

means ((a==1 and b==2) or c==3), and a==1 or b==2 alone means a==1 and
b==2. Second, every uppercase AND and OR in the expression is lowercased,
also inside keys and values: COLOR==RED looks for the key COLor.
Anything that's not a comparison nor a connective is ignored.

Exit status is 2 if the input can't be read, isn't JSON, or isn't an array,
and for usage errors; 1 if the output can't be written.

With --jsonc the input may contain comments and trailing commas. With -v the
parsed conditions and record counts are logged to standard error.

The conformance subdirectory has a tool to compare the output of two
implementations over a set of cases, see conformance/check.go.
*/
package main
