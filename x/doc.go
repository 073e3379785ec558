/*
Package x holds the building blocks shared by the extensions in the
subdirectories. Only generic helpers that are of use to more than one
extension belong here, everything domain specific lives with its
extension.
*/
package x
