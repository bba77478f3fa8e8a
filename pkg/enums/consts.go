/*
 * Copyright (c) 2024-present Madison Web Solutions, Ltd.
 */

package enums

// Reserved first key of a structured export. Associated data fields can not
// use this name.
const NameField = "name"
