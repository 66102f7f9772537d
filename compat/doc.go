/*
Package compat provides the two legacy serialization surfaces that wrap
the genkin core. Both are thin translation layers over [genkin.Amount];
neither duplicates any arithmetic.

The v1 surface serializes amounts with a "precision" field and names
rounding modes in SCREAMING_SNAKE ("HALF_EVEN"). The v2 surface serializes
with a "scale" field and names rounding modes in lowerCamel ("halfEven").
*/
package compat
