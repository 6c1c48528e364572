package httptransport

// Minimal server-rendered pages. The real dashboard UI is a separate
// frontend; these exist so the session gate has somewhere to land.

const loginPage = `<!doctype html>
<html>
<head><title>uniguide · sign in</title></head>
<body>
<h1>uniguide admin</h1>
<form method="post" action="/api/auth/login" id="login">
  <input name="email" type="email" placeholder="email" required>
  <input name="password" type="password" placeholder="password" required>
  <button type="submit">Sign in</button>
</form>
<script>
document.getElementById('login').addEventListener('submit', async (e) => {
  e.preventDefault();
  const form = new FormData(e.target);
  const res = await fetch('/api/auth/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({email: form.get('email'), password: form.get('password')}),
  });
  if (res.ok) window.location = '/dashboard';
});
</script>
</body>
</html>
`

const dashboardPage = `<!doctype html>
<html>
<head><title>uniguide · dashboard</title></head>
<body>
<h1>uniguide admin</h1>
<p>The dashboard frontend talks to <code>/api/students</code>,
<code>/api/colleges</code> and <code>/api/colleges/summary</code>.</p>
</body>
</html>
`
