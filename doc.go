// Copyright 2026 the grant-tracker authors. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package grant-tracker-sheets manages grant tracking spreadsheets on Google Sheets.

grant-tracker-sheets provisions a spreadsheet with the grant tracking schema (the
Grants worksheet plus the Status and Tags dropdown source worksheets) and provides
the day to day commands for working with it from the command line or a cron job.

grant-tracker-sheets supports the following commands:

  - authorise, to authorise application access to Google Sheets and Google Drive
  - create, to create and provision a new grant tracking spreadsheet
  - inspect, to report a spreadsheet's metadata, values, validation rules, named ranges, tables and latest revision
  - get, to download the grants worksheet as a TSV file
  - put, to store a TSV file to the grants worksheet
  - add, to append a grant to the grants worksheet
  - share, to share a spreadsheet with a user
*/
package sheets
