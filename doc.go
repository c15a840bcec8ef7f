/*
Package planning-sheets generates a week planning overview in a Google Sheets
worksheet from a master planning spreadsheet.

planning-sheets can be used from the command line but is really intended to be
run from a cron job at the start of each week, to publish the current week's
planning to a shared spreadsheet.

planning-sheets supports the following commands:

  - generate, to read the source planning, select the current week and write it to the target spreadsheet
  - export, to write the current week's planning to a local TSV or Excel file
  - authorise, to obtain and cache an OAuth access token for the configured client credentials
  - version, to display the current version
*/
package sheets
