// Package user models platform accounts and the three actor roles that drive the
// order lifecycle: Client (customer), Owner (restaurant operator) and Delivery
// (driver).
//
// Role is a closed enumeration. Code that branches on it uses an exhaustive
// switch so adding a role is a compile-checked change (see the exhaustive
// linter annotations in the services package).
package user
