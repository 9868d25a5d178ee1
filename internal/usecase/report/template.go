package report

// FinalReportTemplate is the printable distribution report.
// It is embedded as a Go constant so the binary needs no template files.
const FinalReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Zakat Report - {{.GeneratedAt}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; padding: 30px; color: #333; }
  .header { text-align: center; border-bottom: 3px solid #2c5f2d; padding-bottom: 20px; margin-bottom: 30px; }
  .header h1 { color: #2c5f2d; font-size: 2em; margin-bottom: 10px; }
  .header p { color: #666; font-size: 0.95em; }
  .summary { background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 30px; border: 1px solid #ddd; }
  .summary h2, .records h2 { color: #2c5f2d; font-size: 1.3em; margin-bottom: 15px; }
  .grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 20px; }
  .item { background: white; padding: 15px; border-radius: 6px; border-left: 4px solid #2c5f2d; }
  .item label { display: block; font-size: 0.85em; color: #666; margin-bottom: 5px; }
  .item .value { font-size: 1.5em; font-weight: bold; color: #2c5f2d; }
  .item.open { border-left-color: #f44336; }
  .item.open .value { color: #f44336; }
  table { width: 100%; border-collapse: collapse; border: 1px solid #ddd; }
  thead { background: #2c5f2d; color: white; }
  th, td { padding: 12px; text-align: left; border: 1px solid #ddd; }
  td.amount { text-align: right; }
  tr:nth-child(even) { background: #f8f9fa; }
  .note { background: #e8f5e9; padding: 15px; border-radius: 6px; margin-top: 20px; border: 1px solid #c8e6c9; }
  .footer { margin-top: 40px; padding-top: 20px; border-top: 2px solid #ddd; text-align: center; color: #666; font-size: 0.9em; }
  @media print { body { padding: 20px; } }
</style>
</head>
<body>
<div class="header">
  <h1>Zakat Distribution Report</h1>
  <p>Report Generated: {{.GeneratedAt}} | {{.GeneratedAtHijri}}</p>
</div>

<div class="summary">
  <h2>Zakat Summary ({{.Currency}})</h2>
  <div class="grid">
    <div class="item"><label>Total Zakat Due</label><div class="value">{{.TotalDue}}</div></div>
    <div class="item"><label>Total Distributed</label><div class="value">{{.TotalDistributed}}</div></div>
    {{if .Completed}}
    <div class="item"><label>Status</label><div class="value">Completed</div></div>
    {{else}}
    <div class="item open"><label>Remaining Balance</label><div class="value">{{.Remaining}}</div></div>
    {{end}}
  </div>
  <p style="margin-top: 15px;">Progress: {{.ProgressPercent}}%</p>
</div>

<div class="records">
  <h2>Distribution Records ({{.RecordCount}} {{if eq .RecordCount 1}}Record{{else}}Records{{end}})</h2>
  <table>
    <thead>
      <tr><th>#</th><th>Date</th><th>Recipient</th><th>Category</th><th>Amount</th><th>Notes</th></tr>
    </thead>
    <tbody>
    {{range .Rows}}
      <tr>
        <td>{{.Number}}</td>
        <td>{{.Date}}<br><small>{{.HijriDate}}</small></td>
        <td><strong>{{.RecipientName}}</strong></td>
        <td>{{.Category}}</td>
        <td class="amount">{{.Amount}}</td>
        <td><small>{{.Notes}}</small></td>
      </tr>
    {{else}}
      <tr><td colspan="6" style="text-align: center; color: #999;">No distribution records yet</td></tr>
    {{end}}
    </tbody>
  </table>
</div>

<div class="note">
  <p><strong>Remember:</strong> "The example of those who spend their wealth in the way of Allah is like a seed of grain that sprouts seven ears; in every ear there are a hundred grains." (Quran 2:261)</p>
</div>

<div class="footer">
  <p>This is a computer-generated report for personal record-keeping purposes.</p>
</div>
</body>
</html>
`
